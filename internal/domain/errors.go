package domain

import "errors"

var (
	// ErrTenantNotFound is returned when no tenant matches a lookup.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrEmailTaken is returned on signup with an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSyncInProgress is returned when a sync is requested while another
	// sync for the same tenant holds the lock.
	ErrSyncInProgress = errors.New("sync already in progress for tenant")

	// ErrStoreNotConfigured is returned when a tenant has no store record and
	// no credentials to materialize one.
	ErrStoreNotConfigured = errors.New("no store credentials configured for tenant")
)
