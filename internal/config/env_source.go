package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvSource reads values from environment variables. Surrounding whitespace is
// dropped, so a value of only spaces counts as unset.
type EnvSource struct{}

func NewEnvSource() *EnvSource {
	return &EnvSource{}
}

func (e *EnvSource) Name() string {
	return ProviderEnv
}

func (e *EnvSource) Get(key string) (string, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return "", fmt.Errorf("env %s not set", key)
	}
	return val, nil
}
