package checkout

import (
	"context"
	"fmt"
	"sync"

	"gorestaurant/internal/foodapi"
	"gorestaurant/internal/pricing"

	"github.com/shopspring/decimal"
)

// OrderCreated is the confirmation shown right after an order is placed.
type OrderCreated struct {
	orderID   uint
	navigator Navigator
}

func NewOrderCreated(orderID uint, navigator Navigator) *OrderCreated {
	return &OrderCreated{orderID: orderID, navigator: navigator}
}

func (s *OrderCreated) OrderID() uint {
	return s.orderID
}

// Confirm moves on to the receipt of the created order.
func (s *OrderCreated) Confirm() {
	resetOnto(s.navigator, RouteOrderDetails, s.orderID)
}

// OrderDetails is the read-only receipt of a placed order.
type OrderDetails struct {
	deps Deps

	mu         sync.Mutex
	order      foodapi.Order
	loaded     bool
	generation uint64
	closed     bool
}

func NewOrderDetails(deps Deps) *OrderDetails {
	return &OrderDetails{deps: deps.withDefaults("order_details")}
}

func (s *OrderDetails) Load(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.generation++
	s.closed = false
	gen := s.generation
	s.mu.Unlock()

	order, err := s.deps.Provider.GetOrder(ctx, id)
	if err != nil {
		s.deps.Logger.Warn("Failed to load order", "order_id", id, "error", err)
		s.deps.Notifier.Alert(MsgLoadOrderFailed)
		return fmt.Errorf("load order %d: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.generation {
		return ErrStale
	}
	s.order = *order
	s.loaded = true
	return nil
}

func (s *OrderDetails) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.generation++
}

func (s *OrderDetails) Order() foodapi.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

func (s *OrderDetails) Extras() []pricing.Extra {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]pricing.Extra, len(s.order.Extras))
	copy(out, s.order.Extras)
	return out
}

// HasExtras is false for an order placed without extras.
func (s *OrderDetails) HasExtras() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order.Extras) > 0
}

func (s *OrderDetails) Quantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Quantity
}

func (s *OrderDetails) FormattedPrice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deps.Format(s.order.Price)
}

func (s *OrderDetails) TotalAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Total(s.order.Price, s.order.Extras, s.order.Quantity)
}

func (s *OrderDetails) Total() string {
	return s.deps.Format(s.TotalAmount())
}

func (s *OrderDetails) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
