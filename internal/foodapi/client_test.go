package foodapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gorestaurant/internal/pricing"

	"github.com/shopspring/decimal"
)

// The binaries send prices as JSON numbers; the tests use the same format.
func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", 5*time.Second)
}

func TestGetFood(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/foods/3" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"id":3,"name":"Veggie","price":21.9,"category":2,"image_url":"x.png","extras":[{"id":4,"name":"Cheese","value":3}]}`)
	})

	food, err := client.GetFood(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetFood: %v", err)
	}

	if food.Name != "Veggie" || !food.Price.Equal(decimal.RequireFromString("21.9")) {
		t.Fatalf("food = %+v", food)
	}
	if len(food.Extras) != 1 || food.Extras[0].Quantity != 0 || !food.Extras[0].Value.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("extras = %+v", food.Extras)
	}
}

func TestNotFoundIsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"Food not found"}`)
	})

	_, err := client.GetFood(context.Background(), 9)

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Food not found" {
		t.Fatalf("err = %#v", err)
	}
}

func TestServerErrorIsNotNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.DeleteFavorite(context.Background(), 1)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("err = %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("500 must not match ErrNotFound")
	}
}

func TestFindFavoritesSendsName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Ao molho" {
			t.Errorf("name = %q", got)
		}
		io.WriteString(w, `[{"id":8,"food_id":1,"name":"Ao molho"}]`)
	})

	favorites, err := client.FindFavorites(context.Background(), "Ao molho")
	if err != nil {
		t.Fatal(err)
	}
	if len(favorites) != 1 || favorites[0].ID != 8 {
		t.Fatalf("favorites = %+v", favorites)
	}
}

func TestCreateOrderPostsSnapshot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
			return
		}
		if body["price"] != 10.5 {
			t.Errorf("price = %#v, want JSON number 10.5", body["price"])
		}
		if body["thumbnail_url"] != "thumb.png" {
			t.Errorf("thumbnail_url = %#v", body["thumbnail_url"])
		}

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":77,"product_id":1,"quantity":2,"price":10.5,"extras":[{"id":2,"name":"Cheese","value":1.5,"quantity":1}]}`)
	})

	order, err := client.CreateOrder(context.Background(), OrderRequest{
		ProductID:    1,
		Name:         "Ao molho",
		Price:        decimal.RequireFromString("10.50"),
		Quantity:     2,
		ThumbnailURL: "thumb.png",
		Extras:       []pricing.Extra{{ID: 2, Name: "Cheese", Value: decimal.RequireFromString("1.5"), Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.ID != 77 || len(order.Extras) != 1 || order.Extras[0].Quantity != 1 {
		t.Fatalf("order = %+v", order)
	}
}

func TestListFoodsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("name") != "molho" || q.Get("category") != "1" {
			t.Errorf("query = %v", q)
		}
		io.WriteString(w, `[]`)
	})

	foods, err := client.ListFoods(context.Background(), FoodQuery{Name: "molho", Category: 1})
	if err != nil || len(foods) != 0 {
		t.Fatalf("foods = %v, err = %v", foods, err)
	}
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.GetOrder(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
