package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"gorestaurant/internal/checkout"
	"gorestaurant/internal/config"
	"gorestaurant/internal/foodapi"
	"gorestaurant/internal/pricing"
	"gorestaurant/pkg/logger"

	"github.com/shopspring/decimal"
)

type extraPick struct {
	id    uint
	count int
}

// parseExtra reads "<id>" or "<id>:<count>".
func parseExtra(value string) (extraPick, error) {
	idPart, countPart, hasCount := strings.Cut(value, ":")
	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil || id == 0 {
		return extraPick{}, fmt.Errorf("invalid extra id %q", idPart)
	}
	pick := extraPick{id: uint(id), count: 1}
	if hasCount {
		if pick.count, err = strconv.Atoi(countPart); err != nil || pick.count < 1 {
			return extraPick{}, fmt.Errorf("invalid extra count %q", countPart)
		}
	}
	return pick, nil
}

func validateOptions(foodID uint, quantity int) error {
	if foodID == 0 {
		return errors.New("-food is required")
	}
	if quantity < 1 {
		return fmt.Errorf("-quantity must be at least 1, got %d", quantity)
	}
	return nil
}

func main() {
	cfg := config.Load()

	var (
		extras   []extraPick
		apiURL   = flag.String("api", cfg.APIBaseURL, "API base URL")
		foodID   = flag.Uint("food", 0, "Food id to order")
		quantity = flag.Int("quantity", 1, "Number of units")
		favorite = flag.Bool("favorite", false, "Toggle the food's favorite state")
	)
	flag.Func("extra", "Extra to add as <id> or <id>:<count> (repeatable)", func(value string) error {
		pick, err := parseExtra(value)
		if err != nil {
			return err
		}
		extras = append(extras, pick)
		return nil
	})
	flag.Parse()

	// Same wire format as the server: prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	if err := validateOptions(*foodID, *quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	logConfig := logger.DefaultConfig()
	logConfig.Level = logger.LogLevel(cfg.LogLevel)
	logConfig.Format = "text"
	logConfig.Output = os.Stderr
	logConfig.EnableCaller = false
	logConfig.Component = "order_cli"
	logConfig.Environment = cfg.Environment
	log := logger.New(logConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var route checkout.Route
	deps := checkout.Deps{
		Provider:  foodapi.NewClient(*apiURL, cfg.APITimeoutDuration()),
		Navigator: checkout.NavigatorFunc(func(routes []checkout.Route, index int) { route = routes[index] }),
		Notifier:  checkout.NotifierFunc(func(message string) { fmt.Fprintln(os.Stderr, message) }),
		Logger:    log,
	}

	details := checkout.NewFoodDetails(deps)
	if err := details.Load(ctx, uint(*foodID)); err != nil {
		os.Exit(1)
	}

	for _, pick := range extras {
		if !hasExtra(details.Extras(), pick.id) {
			fmt.Fprintf(os.Stderr, "Error: food %d has no extra %d\n", *foodID, pick.id)
			os.Exit(1)
		}
		for i := 0; i < pick.count; i++ {
			details.IncrementExtra(pick.id)
		}
	}
	for i := 1; i < *quantity; i++ {
		details.IncrementFood()
	}

	food := details.Food()
	fmt.Printf("%s  %s\n", food.Name, details.FormattedPrice())

	if *favorite {
		if err := details.ToggleFavorite(ctx); err != nil {
			os.Exit(1)
		}
		fmt.Printf("Favorite: %s\n", details.FavoriteState())
	}

	fmt.Printf("Quantity: %d  Total: %s\n", details.FoodQuantity(), details.Total())

	order, err := details.FinishOrder(ctx)
	if err != nil {
		os.Exit(1)
	}

	created := checkout.NewOrderCreated(order.ID, deps.Navigator)
	fmt.Printf("Order #%d created\n", created.OrderID())
	created.Confirm()

	id, ok := route.OrderID()
	if !ok {
		log.Error("Missing order id on receipt route", "route", route.Name)
		os.Exit(1)
	}

	receipt := checkout.NewOrderDetails(deps)
	if err := receipt.Load(ctx, id); err != nil {
		os.Exit(1)
	}

	printReceipt(receipt)
}

func hasExtra(extras []pricing.Extra, id uint) bool {
	for _, e := range extras {
		if e.ID == id {
			return true
		}
	}
	return false
}

func printReceipt(receipt *checkout.OrderDetails) {
	order := receipt.Order()
	fmt.Printf("\n%s x%d  %s\n", order.Name, receipt.Quantity(), receipt.FormattedPrice())
	if receipt.HasExtras() {
		fmt.Println("Extras:")
		for _, e := range receipt.Extras() {
			fmt.Printf("  %dx %s\n", e.Quantity, e.Name)
		}
	}
	fmt.Printf("Total: %s\n", receipt.Total())
}
