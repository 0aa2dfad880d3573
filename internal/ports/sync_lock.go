package ports

import "context"

// SyncLocker serializes sync invocations per tenant. Acquire returns false
// when another sync for the same tenant already holds the lock; callers must
// Release on every successful Acquire.
type SyncLocker interface {
	Acquire(ctx context.Context, tenantID string) (bool, error)
	Release(ctx context.Context, tenantID string) error
}
