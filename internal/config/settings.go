package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderEnv   = "env"
	ProviderVault = "vault"
)

// Settings selects and configures the secret source.
type Settings struct {
	Provider   string `env:"CONFIG_PROVIDER" envDefault:"env"`
	VaultAddr  string `env:"VAULT_ADDR"`
	VaultToken string `env:"VAULT_TOKEN"`
	VaultPath  string `env:"VAULT_PATH" envDefault:"secret"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	s, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("could not parse config settings: %w", err)
	}
	s.Provider = strings.ToLower(strings.TrimSpace(s.Provider))
	if s.Provider == "" {
		s.Provider = ProviderEnv
	}
	if s.VaultPath == "" {
		s.VaultPath = "secret"
	}
	return s, nil
}
