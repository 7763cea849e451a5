package checkout

import (
	"context"
	"fmt"
	"sync"

	"gorestaurant/internal/foodapi"
	"gorestaurant/internal/pricing"

	"github.com/shopspring/decimal"
)

// FoodDetails is the state of the food detail screen: the loaded food, the
// selected extras, how many units are being ordered and whether the food
// is a favorite.
type FoodDetails struct {
	deps Deps

	mu           sync.Mutex
	food         foodapi.Food
	loaded       bool
	extras       []pricing.Extra
	foodQuantity int
	favorite     FavoriteState

	// version changes on every mutation and keys the memoized total.
	version uint64
	memo    totalMemo

	// generation changes on Load and Close; responses from an older
	// generation are discarded.
	generation uint64
	closed     bool
}

type totalMemo struct {
	valid   bool
	version uint64
	amount  decimal.Decimal
	display string
}

func NewFoodDetails(deps Deps) *FoodDetails {
	return &FoodDetails{
		deps:         deps.withDefaults("food_details"),
		foodQuantity: pricing.MinFoodQuantity,
	}
}

// Load fetches the food, resets every extra to zero and checks whether the
// food is already a favorite.
func (s *FoodDetails) Load(ctx context.Context, id uint) error {
	gen := s.nextGeneration()

	food, err := s.deps.Provider.GetFood(ctx, id)
	if err != nil {
		s.deps.Logger.Warn("Failed to load food", "food_id", id, "error", err)
		s.deps.Notifier.Alert(MsgLoadFoodFailed)
		return fmt.Errorf("load food %d: %w", id, err)
	}

	s.mu.Lock()
	if !s.current(gen) {
		s.mu.Unlock()
		return ErrStale
	}
	s.food = *food
	s.extras = pricing.WithZeroQuantities(food.Extras)
	s.foodQuantity = pricing.MinFoodQuantity
	s.favorite = NotFavorite
	s.loaded = true
	s.touch()
	s.mu.Unlock()

	s.deps.Logger.Debug("Food loaded", "food_id", food.ID, "extras", len(food.Extras))

	favorites, err := s.deps.Provider.FindFavorites(ctx, food.Name)
	if err != nil {
		s.deps.Logger.Warn("Failed to check favorite", "food_id", food.ID, "error", err)
		s.deps.Notifier.Alert(MsgFavoriteFailed)
		return nil
	}
	if len(favorites) > 0 {
		return s.setFavorite(gen, Favorite)
	}
	return nil
}

// Close marks the screen as gone. Responses still in flight are discarded.
func (s *FoodDetails) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.generation++
}

func (s *FoodDetails) IncrementExtra(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extras = pricing.Increment(s.extras, id)
	s.touch()
}

func (s *FoodDetails) DecrementExtra(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extras = pricing.Decrement(s.extras, id)
	s.touch()
}

func (s *FoodDetails) IncrementFood() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foodQuantity = pricing.IncrementFood(s.foodQuantity)
	s.touch()
}

func (s *FoodDetails) DecrementFood() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foodQuantity = pricing.DecrementFood(s.foodQuantity)
	s.touch()
}

// Food returns the loaded food record.
func (s *FoodDetails) Food() foodapi.Food {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.food
}

// Extras returns a copy of the extras with their selected quantities.
func (s *FoodDetails) Extras() []pricing.Extra {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]pricing.Extra, len(s.extras))
	copy(out, s.extras)
	return out
}

func (s *FoodDetails) FoodQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.foodQuantity
}

// FormattedPrice is the base price of one unit, formatted.
func (s *FoodDetails) FormattedPrice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deps.Format(s.food.Price)
}

// TotalAmount is (price + extras) * quantity.
func (s *FoodDetails) TotalAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total().amount
}

// Total is the formatted cart total.
func (s *FoodDetails) Total() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total().display
}

func (s *FoodDetails) total() totalMemo {
	if s.memo.valid && s.memo.version == s.version {
		return s.memo
	}
	amount := pricing.Total(s.food.Price, s.extras, s.foodQuantity)
	s.memo = totalMemo{
		valid:   true,
		version: s.version,
		amount:  amount,
		display: s.deps.Format(amount),
	}
	return s.memo
}

// FinishOrder submits the food with its selected extras and, once the
// backend accepts it, resets navigation to the order confirmation. If the
// screen was closed while the request was in flight the created order is
// returned together with ErrStale and navigation is left alone.
func (s *FoodDetails) FinishOrder(ctx context.Context) (*foodapi.Order, error) {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return nil, ErrNotLoaded
	}
	gen := s.generation
	food := s.food
	quantity := s.foodQuantity
	selected := pricing.Selected(s.extras)
	s.mu.Unlock()

	if quantity < pricing.MinFoodQuantity {
		s.deps.Notifier.Alert(MsgSelectAtLeastOne)
		return nil, ErrInvalidQuantity
	}

	order, err := s.deps.Provider.CreateOrder(ctx, foodapi.OrderRequest{
		ProductID:    food.ID,
		Name:         food.Name,
		Description:  food.Description,
		Price:        food.Price,
		Category:     food.Category,
		Quantity:     quantity,
		ThumbnailURL: food.ImageURL,
		Extras:       selected,
	})
	if err != nil {
		s.deps.Logger.Warn("Failed to create order", "food_id", food.ID, "error", err)
		s.deps.Notifier.Alert(MsgOrderFailed)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.deps.Logger.Info("Order created", "order_id", order.ID, "food_id", food.ID, "quantity", quantity)

	s.mu.Lock()
	stale := !s.current(gen)
	s.mu.Unlock()
	if stale {
		return order, ErrStale
	}

	resetOnto(s.deps.Navigator, RouteOrderCreated, order.ID)
	return order, nil
}

func (s *FoodDetails) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.closed = false
	return s.generation
}

// current reports whether gen is still the live generation. Callers hold mu.
func (s *FoodDetails) current(gen uint64) bool {
	return !s.closed && gen == s.generation
}

// touch invalidates derived values. Callers hold mu.
func (s *FoodDetails) touch() {
	s.version++
}
