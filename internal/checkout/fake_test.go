package checkout

import (
	"context"
	"errors"
	"sync"

	"gorestaurant/internal/foodapi"
	"gorestaurant/internal/pricing"

	"github.com/shopspring/decimal"
)

var errBackendDown = errors.New("backend down")

// fakeProvider is an in-memory DataProvider that records the calls it gets.
type fakeProvider struct {
	mu sync.Mutex

	foods     map[uint]foodapi.Food
	favorites []foodapi.Favorite
	orders    map[uint]foodapi.Order
	nextID    uint

	createdFavorites int
	deletedFavorites []uint
	orderRequests    []foodapi.OrderRequest

	failGetFood, failFind, failCreateFavorite, failDelete, failCreateOrder, failGetOrder bool

	// beforeReturn runs before GetFood returns, to simulate the user
	// leaving the screen while a request is in flight.
	beforeReturn func()
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		foods:  map[uint]foodapi.Food{1: sampleFood()},
		orders: map[uint]foodapi.Order{},
		nextID: 100,
	}
}

func sampleFood() foodapi.Food {
	return foodapi.Food{
		ID:          1,
		Name:        "Ao molho",
		Description: "Macarrão ao molho branco",
		Price:       decimal.RequireFromString("10.00"),
		Category:    1,
		ImageURL:    "https://example.com/ao_molho.png",
		Extras: []pricing.Extra{
			{ID: 1, Name: "Bacon", Value: decimal.RequireFromString("2.00"), Quantity: 5},
			{ID: 2, Name: "Cheese", Value: decimal.RequireFromString("1.50")},
		},
	}
}

func (p *fakeProvider) GetFood(ctx context.Context, id uint) (*foodapi.Food, error) {
	p.mu.Lock()
	if p.failGetFood {
		p.mu.Unlock()
		return nil, errBackendDown
	}
	food, ok := p.foods[id]
	hook := p.beforeReturn
	p.mu.Unlock()

	if hook != nil {
		hook()
	}
	if !ok {
		return nil, &foodapi.APIError{StatusCode: 404, Message: "Food not found"}
	}
	return &food, nil
}

func (p *fakeProvider) FindFavorites(ctx context.Context, name string) ([]foodapi.Favorite, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failFind {
		return nil, errBackendDown
	}
	var out []foodapi.Favorite
	for _, f := range p.favorites {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out, nil
}

func (p *fakeProvider) CreateFavorite(ctx context.Context, food foodapi.Food) (*foodapi.Favorite, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failCreateFavorite {
		return nil, errBackendDown
	}
	p.createdFavorites++
	p.nextID++
	fav := foodapi.Favorite{ID: p.nextID, FoodID: food.ID, Name: food.Name, Price: food.Price}
	p.favorites = append(p.favorites, fav)
	return &fav, nil
}

func (p *fakeProvider) DeleteFavorite(ctx context.Context, id uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failDelete {
		return errBackendDown
	}
	p.deletedFavorites = append(p.deletedFavorites, id)
	kept := p.favorites[:0]
	for _, f := range p.favorites {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	p.favorites = kept
	return nil
}

func (p *fakeProvider) CreateOrder(ctx context.Context, req foodapi.OrderRequest) (*foodapi.Order, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orderRequests = append(p.orderRequests, req)
	if p.failCreateOrder {
		return nil, errBackendDown
	}
	p.nextID++
	order := foodapi.Order{
		ID:           p.nextID,
		ProductID:    req.ProductID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Quantity:     req.Quantity,
		ThumbnailURL: req.ThumbnailURL,
		Extras:       req.Extras,
	}
	p.orders[order.ID] = order
	return &order, nil
}

func (p *fakeProvider) GetOrder(ctx context.Context, id uint) (*foodapi.Order, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failGetOrder {
		return nil, errBackendDown
	}
	order, ok := p.orders[id]
	if !ok {
		return nil, &foodapi.APIError{StatusCode: 404}
	}
	return &order, nil
}

type recordingNavigator struct {
	routes []Route
	index  int
	calls  int
}

func (n *recordingNavigator) Reset(routes []Route, index int) {
	n.routes = routes
	n.index = index
	n.calls++
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Alert(message string) {
	n.messages = append(n.messages, message)
}
