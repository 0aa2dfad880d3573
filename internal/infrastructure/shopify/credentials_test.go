package shopify

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepulse/internal/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).Level(zerolog.Disabled)
}

func TestResolvePrefersTenantEntry(t *testing.T) {
	resolver := NewConfigCredentialsResolver(
		map[string]domain.StoreCredentials{
			"tenant-1": {Domain: "one.myshopify.com", AccessToken: "shpat_one"},
		},
		domain.StoreCredentials{Domain: "default.myshopify.com", AccessToken: "shpat_default"},
		testLogger(),
	)

	creds, err := resolver.Resolve(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "one.myshopify.com", creds.Domain)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	resolver := NewConfigCredentialsResolver(
		nil,
		domain.StoreCredentials{Domain: "default.myshopify.com", AccessToken: "shpat_default"},
		testLogger(),
	)

	creds, err := resolver.Resolve(context.Background(), "tenant-unknown")
	require.NoError(t, err)
	assert.Equal(t, "default.myshopify.com", creds.Domain)
	assert.Equal(t, "shpat_default", creds.AccessToken)
}

func TestResolveFailsWithoutCompleteDefault(t *testing.T) {
	// A default with only one half configured is no default at all.
	resolver := NewConfigCredentialsResolver(
		nil,
		domain.StoreCredentials{Domain: "default.myshopify.com"},
		testLogger(),
	)

	_, err := resolver.Resolve(context.Background(), "tenant-1")
	require.ErrorIs(t, err, domain.ErrStoreNotConfigured)
}

func TestParseTenantStores(t *testing.T) {
	creds := ParseTenantStores("t1=one.myshopify.com:shpat_one, t2=two.myshopify.com:shpat_two")

	require.Len(t, creds, 2)
	assert.Equal(t, domain.StoreCredentials{Domain: "one.myshopify.com", AccessToken: "shpat_one"}, creds["t1"])
	assert.Equal(t, domain.StoreCredentials{Domain: "two.myshopify.com", AccessToken: "shpat_two"}, creds["t2"])
}

func TestParseTenantStoresSkipsMalformedEntries(t *testing.T) {
	creds := ParseTenantStores("t1=one.myshopify.com:shpat_one,garbage,t2=missing-token,=shop:token,,t3=three.myshopify.com:shpat_three")

	require.Len(t, creds, 2)
	assert.Contains(t, creds, "t1")
	assert.Contains(t, creds, "t3")
}

func TestParseTenantStoresEmpty(t *testing.T) {
	assert.Empty(t, ParseTenantStores(""))
}
