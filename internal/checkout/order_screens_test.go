package checkout

import (
	"context"
	"errors"
	"testing"

	"gorestaurant/internal/foodapi"
	"gorestaurant/internal/pricing"

	"github.com/shopspring/decimal"
)

func TestOrderCreatedConfirm(t *testing.T) {
	nav := &recordingNavigator{}
	screen := NewOrderCreated(42, nav)

	screen.Confirm()

	if nav.calls != 1 || nav.index != 1 {
		t.Fatalf("navigation = %+v", nav)
	}
	if id, ok := nav.routes[1].OrderID(); nav.routes[1].Name != RouteOrderDetails || !ok || id != 42 {
		t.Fatalf("route = %+v, want OrderDetails 42", nav.routes[1])
	}
}

func TestOrderDetailsTotal(t *testing.T) {
	provider := newFakeProvider()
	provider.orders[7] = foodapi.Order{
		ID:       7,
		Price:    decimal.RequireFromString("10.00"),
		Quantity: 3,
		Extras: []pricing.Extra{
			{ID: 2, Name: "Cheese", Value: decimal.RequireFromString("1.50"), Quantity: 2},
		},
	}
	screen := NewOrderDetails(Deps{Provider: provider})

	if err := screen.Load(context.Background(), 7); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := screen.Total(); got != "R$ 39,00" {
		t.Fatalf("Total = %q, want R$ 39,00", got)
	}
	if !screen.HasExtras() || screen.Quantity() != 3 {
		t.Fatalf("HasExtras = %v, Quantity = %d", screen.HasExtras(), screen.Quantity())
	}
	if screen.FormattedPrice() != "R$ 10,00" {
		t.Fatalf("FormattedPrice = %q", screen.FormattedPrice())
	}
}

func TestOrderDetailsWithoutExtras(t *testing.T) {
	provider := newFakeProvider()
	provider.orders[8] = foodapi.Order{ID: 8, Price: decimal.RequireFromString("5.00"), Quantity: 2}
	screen := NewOrderDetails(Deps{Provider: provider})

	if err := screen.Load(context.Background(), 8); err != nil {
		t.Fatal(err)
	}

	if screen.HasExtras() {
		t.Fatal("expected no extras")
	}
	if got := screen.Total(); got != "R$ 10,00" {
		t.Fatalf("Total = %q, want R$ 10,00", got)
	}
}

func TestOrderDetailsLoadFailure(t *testing.T) {
	provider := newFakeProvider()
	notifier := &recordingNotifier{}
	screen := NewOrderDetails(Deps{Provider: provider, Notifier: notifier})

	err := screen.Load(context.Background(), 999)

	if !errors.Is(err, foodapi.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if screen.Loaded() {
		t.Fatal("screen must not be loaded")
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != MsgLoadOrderFailed {
		t.Fatalf("messages = %v", notifier.messages)
	}
}

func TestFullScreenFlow(t *testing.T) {
	provider := newFakeProvider()
	var current Route
	nav := NavigatorFunc(func(routes []Route, index int) { current = routes[index] })
	ctx := context.Background()

	details := NewFoodDetails(Deps{Provider: provider, Navigator: nav})
	if err := details.Load(ctx, 1); err != nil {
		t.Fatal(err)
	}
	details.IncrementExtra(1)
	details.IncrementFood()
	if _, err := details.FinishOrder(ctx); err != nil {
		t.Fatal(err)
	}
	details.Close()

	id, ok := current.OrderID()
	if current.Name != RouteOrderCreated || !ok {
		t.Fatalf("route = %+v", current)
	}
	NewOrderCreated(id, nav).Confirm()
	if current.Name != RouteOrderDetails {
		t.Fatalf("route = %+v", current)
	}

	receipt := NewOrderDetails(Deps{Provider: provider})
	if err := receipt.Load(ctx, id); err != nil {
		t.Fatal(err)
	}
	if got := receipt.Total(); got != "R$ 24,00" {
		t.Fatalf("receipt total = %q, want R$ 24,00", got)
	}
}
