package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/Solvro/lib-backend-hcaptcha/internal/log"
)

// Source describes a backend that can provide configuration values.
type Source interface {
	Get(key string) (string, error)
	Name() string
}

// Manager proxies lookups to the single source picked by CONFIG_PROVIDER.
type Manager struct {
	source Source
}

func NewManager(source Source) *Manager {
	return &Manager{source: source}
}

func (m *Manager) Get(key string) (string, error) {
	return m.source.Get(key)
}

// GetDefault returns the value for key, or defaultVal when it is unset or empty.
func (m *Manager) GetDefault(key, defaultVal string) string {
	val, err := m.Get(key)
	if err != nil || val == "" {
		return defaultVal
	}
	return val
}

func (m *Manager) SourceName() string {
	return m.source.Name()
}

var (
	defaultManager *Manager
	managerOnce    sync.Once
	managerErr     error
)

// Get returns the value for a given key from the configured source.
func Get(key string) (string, error) {
	mgr, err := getDefaultManager()
	if err != nil {
		return "", err
	}
	return mgr.Get(key)
}

// MustGet returns the value or panics if it does not exist.
func MustGet(key string) string {
	val, err := Get(key)
	if err != nil {
		panic(err)
	}
	return val
}

// GetDefault returns the value if available, otherwise falls back to defaultVal.
func GetDefault(key, defaultVal string) string {
	mgr, err := getDefaultManager()
	if err != nil {
		return defaultVal
	}
	return mgr.GetDefault(key, defaultVal)
}

func getDefaultManager() (*Manager, error) {
	managerOnce.Do(func() {
		settings, err := LoadSettings()
		if err != nil {
			managerErr = err
			return
		}

		source, err := NewSource(settings)
		if err != nil {
			managerErr = err
			return
		}

		log.Debug(context.Background(), "config source selected", "provider", source.Name())
		defaultManager = NewManager(source)
	})

	return defaultManager, managerErr
}

// NewSource builds the source named by s.Provider.
func NewSource(s Settings) (Source, error) {
	switch s.Provider {
	case ProviderEnv, "":
		return NewEnvSource(), nil
	case ProviderVault:
		return NewVaultSource(s)
	default:
		return nil, fmt.Errorf("unknown config provider: %s", s.Provider)
	}
}
