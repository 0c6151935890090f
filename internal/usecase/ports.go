package usecase

import "context"

// CartSlot is the single durable key-value slot holding a session's
// serialized cart. Read returns ok=false (no error) when the key is absent.
type CartSlot interface {
	Read(ctx context.Context, key string) (raw []byte, ok bool, err error)
	Write(ctx context.Context, key string, raw []byte) error
}

// ChangePublisher is the optional cart-change notification channel. Mutation
// notifications are best-effort; publish failures never fail the mutation.
type ChangePublisher interface {
	PublishCartChanged(ctx context.Context, msg CartChangedMsg) error
}

type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}
