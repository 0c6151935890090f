package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pirayth/gardenshop/internal/adapter/http/middleware"
	"github.com/pirayth/gardenshop/internal/usecase"
)

type CheckoutHandler struct {
	checkout *usecase.Checkout
}

func NewCheckoutHandler(uc *usecase.Checkout) *CheckoutHandler {
	return &CheckoutHandler{checkout: uc}
}

// Checkout snapshots the cart and returns the manual payment instructions.
// X-Idempotency-Key makes retried submissions return the same reference.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	out, err := h.checkout.Execute(ctx, usecase.CheckoutInput{
		SessionID:      middleware.SessionID(c),
		IdempotencyKey: c.GetHeader("X-Idempotency-Key"),
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrEmptyCart):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, usecase.ErrDuplicate):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, out)
}
