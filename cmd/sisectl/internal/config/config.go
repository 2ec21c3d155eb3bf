package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/client"
)

type contextKey string

const configKey contextKey = "sisectl-config"

// Env holds sisectl settings read from the environment. A .env file in the
// working directory is loaded first (see the root command), then real
// environment variables win.
type Env struct {
	// ServerURL is the SISE API base URL.
	ServerURL string `env:"SISE_API_URL" envDefault:"http://localhost:8000/api"`
	// RequestTimeout bounds every API request.
	RequestTimeout time.Duration `env:"SISE_REQUEST_TIMEOUT" envDefault:"30s"`
	// NonInteractive disables interactive prompts.
	NonInteractive bool `env:"SISE_NON_INTERACTIVE"`
	// Token is an ephemeral credential that bypasses the credential store,
	// for scripting and CI.
	Token string `env:"SISE_TOKEN"`
	// CredentialsFile overrides the default ~/.sise/session.json location.
	CredentialsFile string `env:"SISE_CREDENTIALS_FILE"`
}

// LoadEnv parses the environment into an Env.
func LoadEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &e, nil
}

// GlobalConfig holds shared configuration for all sisectl commands.
// It is injected into the cobra command context by the root command's
// PersistentPreRunE hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	RequestTimeout time.Duration
	NonInteractive bool
	ClientProvider *client.Provider
}

// InjectConfig adds config to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. It should only
// be used in command RunE functions, where the root command has already
// injected the config.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("sisectl: config not found in context - this is a bug in sisectl")
	}
	return cfg
}
