package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"bubblycrochet/internal/domain"
	"bubblycrochet/internal/repos"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder    = errors.New("order must contain at least one item")
	ErrNoAddress     = errors.New("shipping address is required")
	ErrBadStatus     = errors.New("unknown order status")
	ErrBadTransition = errors.New("illegal status transition")
	ErrStaleOrder    = errors.New("order was updated concurrently, reload and retry")
)

type OrderService struct {
	Orders   *repos.OrderRepo
	Products *repos.ProductRepo
}

func NewOrderService(orders *repos.OrderRepo, products *repos.ProductRepo) *OrderService {
	return &OrderService{Orders: orders, Products: products}
}

type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderInput struct {
	Items           []OrderItemInput `json:"items"`
	ShippingAddress string           `json:"shippingAddress"`
	SpecialRequest  string           `json:"specialRequest"`
}

// Place freezes the cart into an order. Line items copy the product's current
// name, discount-adjusted unit price, shipping cost and lead time; later
// product edits never touch a placed order. The order and both fan-out
// notifications are written in one transaction.
func (s *OrderService) Place(user *domain.User, in PlaceOrderInput) (domain.Order, error) {
	if len(in.Items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}
	address := in.ShippingAddress
	if address == "" {
		address = user.Address
	}
	if address == "" {
		return domain.Order{}, ErrNoAddress
	}

	o := domain.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		UserName:        user.Name,
		ContactEmail:    user.Email,
		ShippingAddress: address,
		SpecialRequest:  in.SpecialRequest,
		Status:          domain.StatusPending,
	}

	for _, it := range in.Items {
		if it.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("invalid quantity for %s", it.ProductID)
		}
	}

	for _, it := range mergeItems(in.Items) {
		p, err := s.Products.Get(it.ProductID)
		if err == sql.ErrNoRows {
			return domain.Order{}, fmt.Errorf("unknown product %s", it.ProductID)
		}
		if err != nil {
			return domain.Order{}, err
		}
		unit := roundCents(p.EffectivePrice())
		o.Items = append(o.Items, domain.OrderItem{
			OrderID:      o.ID,
			ProductID:    p.ID,
			Name:         p.Name,
			Price:        unit,
			Quantity:     it.Quantity,
			ShippingCost: p.ShippingCost,
			DaysToMake:   p.DaysToMake,
		})
		o.TotalAmount += unit * float64(it.Quantity)
		o.ShippingTotal += p.ShippingCost * float64(it.Quantity)
	}
	o.TotalAmount = roundCents(o.TotalAmount)
	o.ShippingTotal = roundCents(o.ShippingTotal)

	notifs := []domain.Notification{
		{
			ID:          uuid.NewString(),
			RecipientID: domain.AdminFeed,
			Message:     fmt.Sprintf("New Order #%s from %s", o.ShortCode(), user.Name),
			Type:        domain.NotifOrder,
		},
		{
			ID:          uuid.NewString(),
			RecipientID: user.ID,
			Message:     fmt.Sprintf("Order #%s placed successfully! Status: Pending Review", o.ShortCode()),
			Type:        domain.NotifOrder,
		},
	}

	if err := s.Orders.CreateWithNotifications(&o, notifs); err != nil {
		return domain.Order{}, err
	}
	return s.Get(o.ID)
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	o, err := s.Orders.Get(id)
	if err == sql.ErrNoRows {
		return domain.Order{}, ErrNotFound
	}
	return o, err
}

func (s *OrderService) ListByUser(userID string) ([]domain.Order, error) {
	return s.Orders.ListByUser(userID)
}

func (s *OrderService) ListAll(status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, ErrBadStatus
	}
	return s.Orders.ListAll(status)
}

// UpdateStatus moves an order along the lifecycle and notifies both the owner
// and the admin feed in the same transaction as the status write.
func (s *OrderService) UpdateStatus(id string, target domain.OrderStatus) (domain.Order, error) {
	if !target.Valid() {
		return domain.Order{}, ErrBadStatus
	}
	o, err := s.Get(id)
	if err != nil {
		return domain.Order{}, err
	}
	if !o.Status.CanTransitionTo(target) {
		return domain.Order{}, ErrBadTransition
	}

	notifs := []domain.Notification{
		{
			ID:          uuid.NewString(),
			RecipientID: o.UserID,
			Message:     fmt.Sprintf("Order #%s update: %s", o.ShortCode(), target),
			Type:        domain.NotifOrder,
		},
		{
			ID:          uuid.NewString(),
			RecipientID: domain.AdminFeed,
			Message:     fmt.Sprintf("You updated order #%s to %s", o.ShortCode(), target),
			Type:        domain.NotifOrder,
		},
	}

	ok, err := s.Orders.UpdateStatusWithNotifications(id, o.Status, target, notifs)
	if err != nil {
		return domain.Order{}, err
	}
	if !ok {
		return domain.Order{}, ErrStaleOrder
	}
	return s.Get(id)
}

// mergeItems collapses repeated product lines into one, summing quantities.
// Line items are keyed by (order, product), so a cart may not produce two
// rows for the same product.
func mergeItems(items []OrderItemInput) []OrderItemInput {
	merged := make([]OrderItemInput, 0, len(items))
	at := make(map[string]int, len(items))
	for _, it := range items {
		if i, seen := at[it.ProductID]; seen {
			merged[i].Quantity += it.Quantity
			continue
		}
		at[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
