package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepulse/internal/application"
	"storepulse/internal/domain"
)

type memTenantRepo struct {
	byEmail map[string]*domain.Tenant
}

func (r *memTenantRepo) Create(_ context.Context, tenant *domain.Tenant) error {
	tenant.ID = "tenant-1"
	r.byEmail[tenant.Email] = tenant
	return nil
}

func (r *memTenantRepo) GetByEmail(_ context.Context, email string) (*domain.Tenant, error) {
	return r.byEmail[email], nil
}

func (r *memTenantRepo) GetByID(_ context.Context, _ string) (*domain.Tenant, error) {
	return nil, nil
}

func (r *memTenantRepo) List(_ context.Context) ([]*domain.Tenant, error) {
	out := make([]*domain.Tenant, 0, len(r.byEmail))
	for _, t := range r.byEmail {
		out = append(out, t)
	}
	return out, nil
}

type memTokenService struct{}

func (memTokenService) Issue(tenantID string) (string, error) { return "tok-" + tenantID, nil }
func (memTokenService) Verify(token string) (string, error) {
	return strings.TrimPrefix(token, "tok-"), nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).Level(zerolog.Disabled)
}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	repo := &memTenantRepo{byEmail: map[string]*domain.Tenant{}}
	svc := application.NewAuthService(repo, memTokenService{}, testLogger())
	return NewAuthHandler(svc, testLogger(), false)
}

func signup(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)
	return rec
}

func TestSignupReturnsCreatedTenant(t *testing.T) {
	h := newAuthHandler(t)

	rec := signup(t, h, `{"name":"Acme","email":"owner@acme.test","password":"s3cret"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"message":"Tenant registered"`)
	assert.Contains(t, body, `"email":"owner@acme.test"`)
	assert.NotContains(t, body, "s3cret", "password material must never appear in responses")
}

func TestSignupRejectsBadBody(t *testing.T) {
	h := newAuthHandler(t)

	rec := signup(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginStatusMapping(t *testing.T) {
	h := newAuthHandler(t)
	require.Equal(t, http.StatusCreated, signup(t, h, `{"name":"Acme","email":"owner@acme.test","password":"s3cret"}`).Code)

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		return rec
	}

	t.Run("unknown email", func(t *testing.T) {
		rec := login(`{"email":"nobody@acme.test","password":"s3cret"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Tenant not found"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := login(`{"email":"owner@acme.test","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	})

	t.Run("success", func(t *testing.T) {
		rec := login(`{"email":"owner@acme.test","password":"s3cret"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"tok-tenant-1"}`, rec.Body.String())
	})
}

func TestRevenueRejectsUnparseableDates(t *testing.T) {
	h := NewInsightsHandler(nil, testLogger(), false)

	req := httptest.NewRequest(http.MethodGet, "/insights/revenue?start=last-tuesday", nil)
	rec := httptest.NewRecorder()
	h.Revenue(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid start date"}`, rec.Body.String())
}

func TestParseTimeParam(t *testing.T) {
	got, err := parseTimeParam("2024-01-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2024-01-15T00:00:00Z", got.Format("2006-01-02T15:04:05Z07:00"))

	got, err = parseTimeParam("2024-01-15T10:30:00+02:00")
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = parseTimeParam("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseTimeParam("15/01/2024")
	require.Error(t, err)
}
