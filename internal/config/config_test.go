package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestLoadRequiresCSRFSecretWhenEnabled(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("CSRF_ENABLED", "true")
	t.Setenv("CSRF_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSRF_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("CSRF_ENABLED", "")
	t.Setenv("CSRF_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "membership-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, uint64(10), cfg.Mongo.MaxPoolSize)
	assert.Equal(t, uint64(5), cfg.Mongo.MinPoolSize)
	assert.False(t, cfg.CSRF.Enabled)
	assert.False(t, cfg.App.IsProduction())
}
