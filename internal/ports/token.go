package ports

// TokenService issues and verifies the bearer credential binding a request
// to a tenant identity.
type TokenService interface {
	// Issue returns a signed token carrying the tenant identity claim.
	Issue(tenantID string) (string, error)

	// Verify validates signature and expiry and returns the tenant ID claim.
	Verify(token string) (string, error)
}
