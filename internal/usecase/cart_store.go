package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	domain "github.com/pirayth/gardenshop/internal/entity"
)

// CartStore is the single authority for reading, mutating, and persisting
// the cart of a browsing session. Every mutating operation persists the
// resulting cart before returning, so a concurrent reader observes either
// the pre- or post-mutation state, never a partial write.
//
// Known limitation: two pages of the same session mutating concurrently are
// last-writer-wins at the slot; there is no merge of concurrent edits.
type CartStore struct {
	slot CartSlot
	pub  ChangePublisher // optional
	log  *slog.Logger
}

type CartStoreOption func(*CartStore)

// WithPublisher enables best-effort cart-change notifications.
func WithPublisher(p ChangePublisher) CartStoreOption {
	return func(s *CartStore) { s.pub = p }
}

func NewCartStore(slot CartSlot, log *slog.Logger, opts ...CartStoreOption) *CartStore {
	s := &CartStore{slot: slot, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the session's persisted cart. Absent or unparsable slot data
// degrades to an empty cart; it is never surfaced as an error.
func (s *CartStore) Load(ctx context.Context, sessionID string) domain.Cart {
	raw, ok, err := s.slot.Read(ctx, sessionID)
	if err != nil {
		s.log.WarnContext(ctx, "cart slot read failed", "session", sessionID, "err", err)
		return domain.Cart{}
	}
	if !ok || len(raw) == 0 {
		return domain.Cart{}
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		s.log.WarnContext(ctx, "cart slot data unparsable, starting empty", "session", sessionID, "err", err)
		return domain.Cart{}
	}
	return cart.Sanitize()
}

// AddItem merges the candidate into the session's cart: same derived id
// increments quantity by one (first-seen price and name win), otherwise the
// item is appended with quantity 1.
func (s *CartStore) AddItem(ctx context.Context, sessionID string, cand domain.Candidate) domain.Cart {
	cart := s.Load(ctx, sessionID).Add(cand)
	s.persist(ctx, sessionID, cart, "add", cand.ID)
	return cart
}

// SetQuantity replaces the matching line item's quantity; zero or less
// behaves as RemoveItem. Unknown ids are a no-op but still persist.
func (s *CartStore) SetQuantity(ctx context.Context, sessionID, id string, quantity int) domain.Cart {
	cart := s.Load(ctx, sessionID).SetQuantity(id, quantity)
	s.persist(ctx, sessionID, cart, "set_quantity", id)
	return cart
}

// RemoveItem removes the matching line item; unknown ids are a no-op.
func (s *CartStore) RemoveItem(ctx context.Context, sessionID, id string) domain.Cart {
	cart := s.Load(ctx, sessionID).Remove(id)
	s.persist(ctx, sessionID, cart, "remove", id)
	return cart
}

// Clear persists an empty cart. The slot keeps existing; an empty cart is a
// valid, still-present value.
func (s *CartStore) Clear(ctx context.Context, sessionID string) domain.Cart {
	cart := domain.Cart{}
	s.persist(ctx, sessionID, cart, "clear", "")
	return cart
}

// Total recomputes the cart total from current persisted state.
func (s *CartStore) Total(ctx context.Context, sessionID string) domain.Money {
	return s.Load(ctx, sessionID).Total()
}

// persist writes the cart synchronously. A write failure is the accepted
// degraded mode: the mutation holds in memory for this request but may not
// survive reload, so the error is logged and swallowed.
func (s *CartStore) persist(ctx context.Context, sessionID string, cart domain.Cart, op, itemID string) {
	raw, err := json.Marshal(cart)
	if err != nil {
		s.log.ErrorContext(ctx, "cart marshal failed", "session", sessionID, "err", err)
		return
	}
	if err := s.slot.Write(ctx, sessionID, raw); err != nil {
		s.log.WarnContext(ctx, "cart slot write failed, cart held in memory only", "session", sessionID, "err", err)
		return
	}
	if s.pub == nil {
		return
	}
	msg := CartChangedMsg{
		SessionID:  sessionID,
		Op:         op,
		ItemID:     itemID,
		Count:      cart.Count(),
		TotalCents: cart.Total().Cents,
	}
	if err := s.pub.PublishCartChanged(ctx, msg); err != nil {
		s.log.WarnContext(ctx, "cart change publish failed", "session", sessionID, "err", err)
	}
}
