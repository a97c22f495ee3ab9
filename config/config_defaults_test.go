package config

import (
	"testing"
	"time"

	"nutriledger/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.DefaultTimezone, cfg.Ledger.Timezone)
	assert.InDelta(t, constants.DefaultReviewConfidenceThreshold, cfg.Ledger.ReviewConfidenceThreshold, 1e-9)
	assert.Equal(t, constants.DefaultGeminiModel, cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxImageBytes)
	assert.Equal(t, constants.PubSubProviderInline, cfg.PubSub.Provider)
	assert.Equal(t, defaultGoalCacheSize, cfg.GoalCache.Size)
	assert.Equal(t, defaultGoalCacheTTL, cfg.GoalCache.TTL)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 5*time.Second, cfg.Database.PoolCheckInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Database.PoolWaitWarnThreshold)
	assert.False(t, cfg.Migration.AutoMigrate)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Ledger:    &LedgerConfig{Timezone: "America/Santiago", ReviewConfidenceThreshold: 0.7},
		Gemini:    &GeminiConfig{Model: "gemini-2.5-pro", Timeout: time.Second},
		PubSub:    &PubSubConfig{Provider: constants.PubSubProviderGoogle},
		GoalCache: &GoalCacheConfig{Size: 10, TTL: time.Minute},
		Database:  &DatabaseConfig{SlowQueryThreshold: time.Second},
	}
	applyDefaults(cfg)

	assert.Equal(t, "America/Santiago", cfg.Ledger.Timezone)
	assert.InDelta(t, 0.7, cfg.Ledger.ReviewConfidenceThreshold, 1e-9)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, constants.PubSubProviderGoogle, cfg.PubSub.Provider)
	assert.Equal(t, 10, cfg.GoalCache.Size)
	assert.Equal(t, time.Second, cfg.Database.SlowQueryThreshold)
}

func TestConfig_Location(t *testing.T) {
	var nilCfg *Config
	loc, err := nilCfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg := &Config{Ledger: &LedgerConfig{Timezone: "UTC"}}
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	cfg.Ledger.Timezone = "Mars/Olympus_Mons"
	_, err = cfg.Location()
	assert.Error(t, err)
}
