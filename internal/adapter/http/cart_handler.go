package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pirayth/gardenshop/internal/adapter/http/middleware"
	"github.com/pirayth/gardenshop/internal/catalog"
	domain "github.com/pirayth/gardenshop/internal/entity"
	"github.com/pirayth/gardenshop/internal/usecase"
)

type CartHandler struct {
	store   *usecase.CartStore
	catalog *catalog.Provider
}

func NewCartHandler(store *usecase.CartStore, cat *catalog.Provider) *CartHandler {
	return &CartHandler{store: store, catalog: cat}
}

// cartResp always renders from the store's return value, never from a
// locally mutated copy.
type cartResp struct {
	Items domain.Cart  `json:"items"`
	Total domain.Money `json:"total"`
	Count int          `json:"count"`
}

func renderCart(c *gin.Context, status int, cart domain.Cart) {
	c.JSON(status, cartResp{Items: cart, Total: cart.Total(), Count: cart.Count()})
}

func (h *CartHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	renderCart(c, http.StatusOK, h.store.Load(ctx, middleware.SessionID(c)))
}

type addItemReq struct {
	Key string `json:"key" binding:"required"`
}

// AddItem resolves a catalog key to a cart candidate and merges it in.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	entry, ok := h.catalog.Get(req.Key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown_product"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	middleware.CountCartMutation("add")
	renderCart(c, http.StatusOK, h.store.AddItem(ctx, middleware.SessionID(c), entry.Candidate()))
}

type setQuantityReq struct {
	// Pointer so an explicit zero (which removes the item) binds.
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	middleware.CountCartMutation("set_quantity")
	renderCart(c, http.StatusOK, h.store.SetQuantity(ctx, middleware.SessionID(c), c.Param("id"), *req.Quantity))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	middleware.CountCartMutation("remove")
	renderCart(c, http.StatusOK, h.store.RemoveItem(ctx, middleware.SessionID(c), c.Param("id")))
}

func (h *CartHandler) Clear(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	middleware.CountCartMutation("clear")
	renderCart(c, http.StatusOK, h.store.Clear(ctx, middleware.SessionID(c)))
}
