package handlers

import (
	"bubblycrochet/internal/domain"
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/services"
	"bubblycrochet/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// POST /api/orders
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in services.PlaceOrderInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req, okR := validate.Text(in.SpecialRequest, 500); okR {
		in.SpecialRequest = req
	} else {
		return fail(c, fiber.StatusBadRequest, "Special request cannot exceed 500 characters")
	}

	u := currentUser(c)
	o, err := h.Orders.Place(u, in)
	if err != nil {
		applog.Security(c, "order.place.fail", map[string]any{"user_id": u.ID, "error": err.Error()})
		return failErr(c, err)
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": o.ID,
		"total":    o.TotalAmount,
		"shipping": o.ShippingTotal,
		"items":    len(o.Items),
	})
	return ok(c, fiber.StatusCreated, fiber.Map{"order": o})
}

// GET /api/orders/my-orders
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	orders, err := h.Orders.ListByUser(currentUser(c).ID)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, fiber.Map{"count": len(orders), "orders": orders})
}

// GET /api/orders?status= (admin)
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.Orders.ListAll(domain.OrderStatus(c.Query("status")))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"count": len(orders), "orders": orders})
}

// GET /api/orders/:id. Owner or admin only.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Order not found")
	}
	o, err := h.Orders.Get(id)
	if err != nil {
		return failErr(c, err)
	}
	u := currentUser(c)
	if o.UserID != u.ID && !u.IsAdmin() {
		applog.Security(c, "access.denied.order", map[string]any{"order_id": id, "user_id": u.ID})
		return fail(c, fiber.StatusForbidden, "Not authorized")
	}
	return ok(c, fiber.StatusOK, fiber.Map{"order": o})
}

// PUT /api/orders/:id/status (admin)
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Order not found")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	o, err := h.Orders.UpdateStatus(id, domain.OrderStatus(req.Status))
	if err != nil {
		applog.Error(c, "order.status.fail", err, map[string]any{"order_id": id, "status": req.Status})
		return failErr(c, err)
	}
	applog.Audit(c, "order.status.update", map[string]any{"order_id": id, "status": o.Status})
	return ok(c, fiber.StatusOK, fiber.Map{"order": o})
}
