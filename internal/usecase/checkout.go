package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	domain "github.com/pirayth/gardenshop/internal/entity"
)

var (
	ErrDuplicate = errors.New("duplicate checkout submission")
	ErrEmptyCart = errors.New("cart is empty")
)

// PaymentInstructions is everything the customer needs to pay out-of-band.
type PaymentInstructions struct {
	LTCAddress   string `json:"ltcAddress"`
	PayPalEmail  string `json:"paypalEmail"`
	OrderFormURL string `json:"orderFormUrl"`
}

type CheckoutInput struct {
	SessionID      string
	IdempotencyKey string
}

type CheckoutOutput struct {
	Reference string              `json:"reference"`
	Items     domain.Cart         `json:"items"`
	Total     domain.Money        `json:"total"`
	Payment   PaymentInstructions `json:"payment"`
}

// Checkout hands the cart off to the manual payment process: it snapshots
// the cart and total at the moment checkout is initiated and returns the
// payment instructions plus a reference for the customer to quote on the
// external order form. No order is stored server-side.
type Checkout struct {
	store   *CartStore
	idem    IdempotencyStore
	payment PaymentInstructions
}

func NewCheckout(store *CartStore, idem IdempotencyStore, payment PaymentInstructions) *Checkout {
	return &Checkout{store: store, idem: idem, payment: payment}
}

func (uc *Checkout) Execute(ctx context.Context, in CheckoutInput) (CheckoutOutput, error) {
	cart := uc.store.Load(ctx, in.SessionID)
	if len(cart) == 0 {
		return CheckoutOutput{}, ErrEmptyCart
	}

	if in.IdempotencyKey != "" {
		// Fast path: a retried submission gets its original reference back.
		if ref, ok, _ := uc.idem.Recall(ctx, in.SessionID, in.IdempotencyKey); ok {
			return CheckoutOutput{Reference: ref, Items: cart, Total: cart.Total(), Payment: uc.payment}, nil
		}
		ok, err := uc.idem.TryLock(ctx, in.SessionID, in.IdempotencyKey)
		if err != nil {
			return CheckoutOutput{}, err
		}
		if !ok {
			return CheckoutOutput{}, ErrDuplicate
		}
	}

	ref := uuid.NewString()
	if in.IdempotencyKey != "" {
		_ = uc.idem.Remember(ctx, in.SessionID, in.IdempotencyKey, ref)
	}
	return CheckoutOutput{
		Reference: ref,
		Items:     cart,
		Total:     cart.Total(),
		Payment:   uc.payment,
	}, nil
}
