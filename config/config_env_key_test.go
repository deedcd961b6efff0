package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "",
			"breaker": map[string]any{
				"consecutiveFailures": 5,
			},
		},
		"session": map[string]any{
			"cookieName": "",
			"redis": map[string]any{
				"addr": "",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "BACKEND_BREAKER_CONSECUTIVEFAILURES", want: "backend.breaker.consecutiveFailures"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_REDIS_ADDR", want: "session.redis.addr"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{Backend: &BackendConfig{BaseURL: "http://backend/api/"}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "http://backend/api", cfg.Backend.BaseURL)
	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
	assert.Equal(t, 48*time.Hour, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "INR", cfg.Payment.Currency)
	assert.Equal(t, "0.18", cfg.Checkout.Rate().String())
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.EqualValues(t, defaultBreakerFailures, cfg.Backend.Breaker.ConsecutiveFailures)
	assert.NotNil(t, cfg.TestRoutes)
}

func TestApplyDefaults_RequiresBackend(t *testing.T) {
	cfg := &Config{}

	assert.Error(t, cfg.applyDefaults())
}

func TestApplyDefaults_RejectsBadTaxRate(t *testing.T) {
	for _, rate := range []string{"eighteen", "-0.1"} {
		cfg := &Config{
			Backend:  &BackendConfig{BaseURL: "http://backend"},
			Checkout: &CheckoutConfig{TaxRate: rate},
		}

		assert.Error(t, cfg.applyDefaults(), rate)
	}
}
