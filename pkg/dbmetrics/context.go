package dbmetrics

import "context"

type ctxKey struct{}

// WithExecutor stores an executor (normally an open transaction) in the
// context so repositories participate in the caller's transaction.
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, executor)
}

// GetExecutor returns the executor stored in the context, or fallback when
// the context carries none. Repositories call this on every operation.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction reports whether the context carries a transaction executor.
// Used to decide whether row locks (FOR UPDATE) make sense.
func IsInTransaction(ctx context.Context) bool {
	executor, ok := ctx.Value(ctxKey{}).(DBExecutor)
	if !ok {
		return false
	}
	_, isTx := executor.(TxExecutor)
	return isTx
}
