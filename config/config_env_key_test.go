package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl":     "mem://",
			"publicBaseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"rateLimit": map[string]any{
			"loginPerWindow": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RATELIMIT_LOGINPERWINDOW", want: "rateLimit.loginPerWindow"},
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

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{}

	defaultLimit, maxLimit := cfg.PageLimits()
	assert.Equal(t, 10, defaultLimit)
	assert.Equal(t, 100, maxLimit)
	assert.Equal(t, 10, cfg.LeaderboardLimit())
	assert.Equal(t, 1920, cfg.MaxImageWidth())
}

func TestConfig_Overrides(t *testing.T) {
	cfg := &Config{
		Pagination: &PaginationConfig{DefaultLimit: 25, MaxLimit: 50, LeaderboardLimit: 3},
		Assets:     &AssetsConfig{MaxImageWidth: 800},
	}

	defaultLimit, maxLimit := cfg.PageLimits()
	assert.Equal(t, 25, defaultLimit)
	assert.Equal(t, 50, maxLimit)
	assert.Equal(t, 3, cfg.LeaderboardLimit())
	assert.Equal(t, 800, cfg.MaxImageWidth())
}
