package application

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storepulse/internal/domain"
)

type fakeTenantRepo struct {
	byEmail map[string]*domain.Tenant
	nextID  int
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{byEmail: map[string]*domain.Tenant{}}
}

func (r *fakeTenantRepo) Create(_ context.Context, tenant *domain.Tenant) error {
	if _, ok := r.byEmail[tenant.Email]; ok {
		return domain.ErrEmailTaken
	}
	r.nextID++
	tenant.ID = fmt.Sprintf("tenant-%d", r.nextID)
	r.byEmail[tenant.Email] = tenant
	return nil
}

func (r *fakeTenantRepo) GetByEmail(_ context.Context, email string) (*domain.Tenant, error) {
	return r.byEmail[email], nil
}

func (r *fakeTenantRepo) GetByID(_ context.Context, id string) (*domain.Tenant, error) {
	for _, t := range r.byEmail {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) List(_ context.Context) ([]*domain.Tenant, error) {
	out := make([]*domain.Tenant, 0, len(r.byEmail))
	for _, t := range r.byEmail {
		out = append(out, t)
	}
	return out, nil
}

type fakeTokenService struct{}

func (fakeTokenService) Issue(tenantID string) (string, error) {
	return "token-for-" + tenantID, nil
}

func (fakeTokenService) Verify(token string) (string, error) {
	return strings.TrimPrefix(token, "token-for-"), nil
}

func TestSignupHashesPassword(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewAuthService(repo, fakeTokenService{}, testLogger())

	tenant, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Acme",
		Email:    "owner@acme.test",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotNil(t, tenant)
	assert.NotEmpty(t, tenant.ID)
	assert.NotEqual(t, "s3cret", tenant.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte("s3cret")))
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewAuthService(repo, fakeTokenService{}, testLogger())

	_, err := svc.Signup(context.Background(), SignupInput{Name: "Acme", Email: "owner@acme.test", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), SignupInput{Name: "Other", Email: "owner@acme.test", Password: "y"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewAuthService(repo, fakeTokenService{}, testLogger())

	tenant, err := svc.Signup(context.Background(), SignupInput{Name: "Acme", Email: "owner@acme.test", Password: "s3cret"})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "owner@acme.test", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+tenant.ID, token)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeTenantRepo(), fakeTokenService{}, testLogger())

	_, err := svc.Login(context.Background(), "nobody@acme.test", "whatever")
	require.ErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewAuthService(repo, fakeTokenService{}, testLogger())

	_, err := svc.Signup(context.Background(), SignupInput{Name: "Acme", Email: "owner@acme.test", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "owner@acme.test", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
