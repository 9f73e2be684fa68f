package config

import (
	"testing"
	"time"

	"nutriledger/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"driver": "sheets",
			"sheets": map[string]any{
				"spreadsheetId":   "",
				"credentialsPath": "",
			},
		},
		"estimator": map[string]any{
			"apiKey": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_SHEETS_SPREADSHEETID", want: "store.sheets.spreadsheetId"},
		{envKey: "STORE_SHEETS_CREDENTIALSPATH", want: "store.sheets.credentialsPath"},
		{envKey: "ESTIMATOR_APIKEY", want: "estimator.apiKey"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.PasswordModePlaintext, cfg.Auth.PasswordMode)
	assert.Equal(t, 12*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, constants.StoreDriverSheets, cfg.Store.Driver)
	assert.Equal(t, "UTC", cfg.Ledger.Timezone)
	assert.Equal(t, defaultPointsPerLog, cfg.Ledger.PointsPerLog)
	assert.Equal(t, defaultLeaderboardLimit, cfg.Ledger.LeaderboardLimit)
	assert.Equal(t, defaultEstimatorModel, cfg.Estimator.Model)
	assert.Equal(t, defaultEstimatorTimeout, cfg.Estimator.Timeout)
	assert.NotNil(t, cfg.Photos)
}

func TestSheetsConfig_Configured(t *testing.T) {
	var missing *SheetsConfig
	assert.False(t, missing.Configured())
	assert.False(t, (&SheetsConfig{SpreadsheetID: "abc"}).Configured())
	assert.False(t, (&SheetsConfig{CredentialsPath: "/secrets/sa.json"}).Configured())
	assert.True(t, (&SheetsConfig{SpreadsheetID: "abc", CredentialsPath: "/secrets/sa.json"}).Configured())
	assert.True(t, (&SheetsConfig{SpreadsheetID: "abc", CredentialsJSON: "{}"}).Configured())
}

func TestShippedConfig_HasNoAdminUsernames(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config", ".")
	require.NoError(t, err)

	require.NotNil(t, cfg.Auth)
	assert.Empty(t, cfg.Auth.AdminUsernames)
}
