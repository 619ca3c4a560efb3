package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-simpler.org/env"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(env.Map{})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", c.Addr())
	assert.Equal(t, []string{"00", "01"}, c.CardSets)
	assert.Equal(t, ".cache", c.CacheDir)
	assert.Equal(t, "https://playartifact.com/cardset/", c.CatalogURL)
	assert.True(t, c.Preload)
	assert.Equal(t, 12*time.Second, c.HTTPTimeout)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	c, err := Load(env.Map{
		"PORT":         "9000",
		"LISTEN":       "127.0.0.1",
		"CARD_SETS":    "01",
		"PRELOAD":      "false",
		"HTTP_TIMEOUT": "3s",
		"LOG_LEVEL":    "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", c.Addr())
	assert.Equal(t, []string{"01"}, c.CardSets)
	assert.False(t, c.Preload)
	assert.Equal(t, 3*time.Second, c.HTTPTimeout)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(env.Map{"PORT": "70000"})
	assert.Error(t, err)
	_, err = Load(env.Map{"PORT": "eighty"})
	assert.Error(t, err)
	_, err = Load(env.Map{"LOG_LEVEL": "loud"})
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)
	assert.Contains(t, buf.String(), "CARD_SETS")
	assert.Contains(t, buf.String(), "CATALOG_URL")
}
