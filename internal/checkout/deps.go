// Package checkout models the food ordering screens: food details with
// extras and a running total, the order confirmation and the receipt.
// Each screen gets its collaborators injected and keeps its state in memory
// for the duration of a visit.
package checkout

import (
	"context"
	"errors"

	"gorestaurant/internal/foodapi"
	"gorestaurant/internal/pricing"
	"gorestaurant/pkg/logger"
)

var (
	// ErrInvalidQuantity rejects an order for fewer than one unit.
	ErrInvalidQuantity = errors.New("select at least one dish")
	// ErrNotLoaded is returned by actions that need a loaded record.
	ErrNotLoaded = errors.New("screen has not finished loading")
	// ErrStale is returned when a response arrives after the screen was
	// closed or reloaded; the response is discarded.
	ErrStale = errors.New("response discarded: screen closed or reloaded")
)

// User-facing messages.
const (
	MsgSelectAtLeastOne = "Select at least 1 dish to place the order!"
	MsgLoadFoodFailed   = "We could not load this dish. Please try again."
	MsgLoadOrderFailed  = "We could not load this order. Please try again."
	MsgFavoriteFailed   = "We could not update your favorites. Please try again."
	MsgOrderFailed      = "We could not place your order. Please try again."
)

// DataProvider is the remote backend. *foodapi.Client satisfies it.
type DataProvider interface {
	GetFood(ctx context.Context, id uint) (*foodapi.Food, error)
	FindFavorites(ctx context.Context, name string) ([]foodapi.Favorite, error)
	CreateFavorite(ctx context.Context, food foodapi.Food) (*foodapi.Favorite, error)
	DeleteFavorite(ctx context.Context, id uint) error
	CreateOrder(ctx context.Context, req foodapi.OrderRequest) (*foodapi.Order, error)
	GetOrder(ctx context.Context, id uint) (*foodapi.Order, error)
}

// Notifier shows an alert-style message to the user.
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Alert(message string) { f(message) }

// Deps are the collaborators shared by the screens. Format defaults to
// pricing.FormatValue, Logger to a discarding logger and Notifier to a no-op.
type Deps struct {
	Provider  DataProvider
	Navigator Navigator
	Notifier  Notifier
	Format    pricing.Formatter
	Logger    *logger.Logger
}

func (d Deps) withDefaults(component string) Deps {
	if d.Format == nil {
		d.Format = pricing.FormatValue
	}
	if d.Logger == nil {
		d.Logger = logger.Discard()
	}
	d.Logger = d.Logger.WithComponent(component)
	if d.Notifier == nil {
		d.Notifier = NotifierFunc(func(string) {})
	}
	return d
}
