package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"storepulse/internal/domain"
	"storepulse/internal/ports"
)

const bcryptCost = 10

// AuthService handles tenant signup and login.
type AuthService struct {
	tenants ports.TenantRepository
	tokens  ports.TokenService
	logger  zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(tenants ports.TenantRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		tenants: tenants,
		tokens:  tokens,
		logger:  logger,
	}
}

// SignupInput represents input for tenant registration
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new tenant with a bcrypt-hashed password.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.Tenant, error) {
	existing, err := s.tenants.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing tenant: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tenant := &domain.Tenant{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.Info().Str("tenantId", tenant.ID).Str("email", tenant.Email).Msg("Tenant registered")
	return tenant, nil
}

// Login verifies the tenant's credentials and issues a bearer token. An
// unknown email maps to domain.ErrTenantNotFound, a wrong password to
// domain.ErrInvalidCredentials; the two are surfaced distinctly.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	tenant, err := s.tenants.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up tenant: %w", err)
	}
	if tenant == nil {
		return "", domain.ErrTenantNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("email", email).Msg("Invalid password attempt")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(tenant.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
