package handlers

import (
	"bubblycrochet/internal/domain"
	applog "bubblycrochet/internal/log"
	"bubblycrochet/internal/services"
	"bubblycrochet/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

type productBody struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	Images       []string `json:"images"`
	InStock      *bool    `json:"inStock"`
	Discount     float64  `json:"discount"`
	DaysToMake   int      `json:"daysToMake"`
	ShippingCost float64  `json:"shippingCost"`
}

func (b productBody) validate() (domain.Product, string) {
	name, okN := validate.Name(b.Name)
	desc, okD := validate.Text(b.Description, 1000)
	switch {
	case !okN:
		return domain.Product{}, "Product name is required (max 100 chars)"
	case !okD || desc == "":
		return domain.Product{}, "Product description is required (max 1000 chars)"
	case b.Price < 0:
		return domain.Product{}, "Price cannot be negative"
	case !validate.OneOf(b.Category, domain.ProductCategories):
		return domain.Product{}, "Unknown category"
	case len(b.Images) == 0:
		return domain.Product{}, "At least one image is required"
	case !validate.Discount(b.Discount):
		return domain.Product{}, "Discount must be between 0 and 100"
	case b.DaysToMake < 1:
		return domain.Product{}, "Production time must be at least 1 day"
	case b.ShippingCost < 0:
		return domain.Product{}, "Shipping cost cannot be negative"
	}

	inStock := true
	if b.InStock != nil {
		inStock = *b.InStock
	}
	return domain.Product{
		Name: name, Description: desc, Price: b.Price, Category: b.Category,
		Images: b.Images, InStock: inStock, Discount: b.Discount,
		DaysToMake: b.DaysToMake, ShippingCost: b.ShippingCost,
	}, ""
}

// GET /api/products?search=&category=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" && !validate.OneOf(category, domain.ProductCategories) {
		return fail(c, fiber.StatusBadRequest, "Unknown category")
	}
	products, err := h.Catalog.List(c.Query("search"), category)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, fiber.Map{"count": len(products), "products": withEffectivePrices(products)})
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"product": productView(p)})
}

// POST /api/products (admin)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var body productBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p, msg := body.validate()
	if msg != "" {
		applog.Security(c, "product.validation.fail", map[string]any{"reason": msg})
		return fail(c, fiber.StatusBadRequest, msg)
	}
	created, err := h.Catalog.Create(p)
	if err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": created.ID})
	return ok(c, fiber.StatusCreated, fiber.Map{"product": productView(created)})
}

// PUT /api/products/:id (admin)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	var body productBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p, msg := body.validate()
	if msg != "" {
		return fail(c, fiber.StatusBadRequest, msg)
	}
	p.ID = id
	updated, err := h.Catalog.Update(p)
	if err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"product": productView(updated)})
}

// DELETE /api/products/:id (admin). Orders referencing the product keep
// their frozen line items.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusNotFound, "Product not found")
	}
	if err := h.Catalog.Delete(id); err != nil {
		return failErr(c, err)
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Product deleted"})
}

// productView flattens a product plus its computed effective price.
func productView(p domain.Product) fiber.Map {
	return fiber.Map{
		"id":             p.ID,
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"effectivePrice": p.EffectivePrice(),
		"category":       p.Category,
		"images":         p.Images,
		"inStock":        p.InStock,
		"discount":       p.Discount,
		"daysToMake":     p.DaysToMake,
		"shippingCost":   p.ShippingCost,
		"createdAt":      p.CreatedAt,
		"updatedAt":      p.UpdatedAt,
	}
}

func withEffectivePrices(products []domain.Product) []fiber.Map {
	out := make([]fiber.Map, 0, len(products))
	for _, p := range products {
		out = append(out, productView(p))
	}
	return out
}
