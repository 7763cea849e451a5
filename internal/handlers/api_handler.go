package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gorestaurant/internal/models"
	"gorestaurant/internal/repository"
	"gorestaurant/internal/services"
	"gorestaurant/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type APIHandler struct {
	foodService     services.FoodService
	favoriteService services.FavoriteService
	orderService    services.OrderService
	logger          *logger.Logger
}

func NewAPIHandler(
	foodService services.FoodService,
	favoriteService services.FavoriteService,
	orderService services.OrderService,
	log *logger.Logger,
) *APIHandler {
	return &APIHandler{
		foodService:     foodService,
		favoriteService: favoriteService,
		orderService:    orderService,
		logger:          log.WithComponent("api_handler"),
	}
}

type FavoriteRequest struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    uint            `json:"category"`
	ImageURL    string          `json:"image_url"`
}

type OrderExtraRequest struct {
	ID       uint            `json:"id" binding:"required"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`
}

type OrderRequest struct {
	ProductID    uint                `json:"product_id" binding:"required"`
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description"`
	Price        decimal.Decimal     `json:"price"`
	Category     uint                `json:"category"`
	Quantity     int                 `json:"quantity"`
	ThumbnailURL string              `json:"thumbnail_url"`
	Extras       []OrderExtraRequest `json:"extras"`
}

func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Foods

func (h *APIHandler) ListFoods(c *gin.Context) {
	filter := repository.FoodFilter{Name: strings.TrimSpace(c.Query("name"))}
	if category := c.Query("category"); category != "" {
		value, err := strconv.ParseUint(category, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		filter.Category = uint(value)
	}

	foods, err := h.foodService.ListFoods(c.Request.Context(), filter)
	if err != nil {
		h.serverError(c, "Failed to list foods", err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *APIHandler) GetFood(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	food, err := h.foodService.GetFood(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		h.serverError(c, "Failed to load food", err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// Favorites

func (h *APIHandler) ListFavorites(c *gin.Context) {
	var (
		favorites []models.Favorite
		err       error
	)
	if name, ok := c.GetQuery("name"); ok {
		favorites, err = h.favoriteService.FindByName(c.Request.Context(), name)
	} else {
		favorites, err = h.favoriteService.GetAllFavorites(c.Request.Context())
	}
	if err != nil {
		h.serverError(c, "Failed to list favorites", err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *APIHandler) CreateFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	favorite := &models.Favorite{
		FoodID:      req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}

	result, created, err := h.favoriteService.CreateFavorite(c.Request.Context(), favorite)
	if err != nil {
		h.serverError(c, "Failed to create favorite", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (h *APIHandler) DeleteFavorite(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.DeleteFavorite(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		h.serverError(c, "Failed to delete favorite", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Orders

func (h *APIHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to list orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order := &models.Order{
		ProductID:    req.ProductID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Quantity:     req.Quantity,
		ThumbnailURL: req.ThumbnailURL,
	}
	for _, extra := range req.Extras {
		order.Extras = append(order.Extras, models.OrderExtra{
			ExtraID:  extra.ID,
			Name:     extra.Name,
			Value:    extra.Value,
			Quantity: extra.Quantity,
		})
	}

	if err := h.orderService.CreateOrder(c.Request.Context(), order); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrUnknownExtra),
			errors.Is(err, services.ErrInvalidExtraItem):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			h.serverError(c, "Failed to create order", err)
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *APIHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.serverError(c, "Failed to load order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *APIHandler) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, "error", err, "path", c.Request.URL.Path)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
