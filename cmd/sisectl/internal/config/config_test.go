package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", env.ServerURL)
	assert.Equal(t, 30*time.Second, env.RequestTimeout)
	assert.False(t, env.NonInteractive)
	assert.Empty(t, env.Token)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SISE_API_URL", "https://sise.colegio.edu.co/api")
	t.Setenv("SISE_REQUEST_TIMEOUT", "5s")
	t.Setenv("SISE_NON_INTERACTIVE", "true")
	t.Setenv("SISE_TOKEN", "ci-token")

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://sise.colegio.edu.co/api", env.ServerURL)
	assert.Equal(t, 5*time.Second, env.RequestTimeout)
	assert.True(t, env.NonInteractive)
	assert.Equal(t, "ci-token", env.Token)
}

func TestConfigContextRoundTrip(t *testing.T) {
	cfg := &GlobalConfig{ServerURL: "http://localhost:8000/api"}
	ctx := InjectConfig(context.Background(), cfg)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, cfg, got)

	assert.Same(t, cfg, MustFromContext(ctx))
}

func TestFromContextMissing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	assert.Panics(t, func() { MustFromContext(context.Background()) })
}
