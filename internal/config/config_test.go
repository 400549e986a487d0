package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PROVIDER", "")
	t.Setenv("VAULT_PATH", "")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, ProviderEnv, s.Provider)
	assert.Equal(t, "secret", s.VaultPath)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_PROVIDER", " Vault ")
	t.Setenv("VAULT_ADDR", "http://127.0.0.1:8200")
	t.Setenv("VAULT_TOKEN", "root")
	t.Setenv("VAULT_PATH", "kv")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Provider:   ProviderVault,
		VaultAddr:  "http://127.0.0.1:8200",
		VaultToken: "root",
		VaultPath:  "kv",
	}, s)
}

func TestEnvSource(t *testing.T) {
	t.Setenv("HCAPTCHA_SECRET", "0x0000000000000000000000000000000000000000")

	src := NewEnvSource()
	val, err := src.Get("HCAPTCHA_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000", val)

	t.Setenv("HCAPTCHA_BLANK", "   ")
	_, err = src.Get("HCAPTCHA_BLANK")
	assert.EqualError(t, err, "env HCAPTCHA_BLANK not set")

	_, err = src.Get("HCAPTCHA_DOES_NOT_EXIST")
	assert.EqualError(t, err, "env HCAPTCHA_DOES_NOT_EXIST not set")
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(Settings{Provider: ProviderEnv})
	require.NoError(t, err)
	assert.Equal(t, ProviderEnv, src.Name())

	_, err = NewSource(Settings{Provider: ProviderVault})
	assert.EqualError(t, err, "vault config requires VAULT_ADDR and VAULT_TOKEN")

	src, err = NewSource(Settings{Provider: ProviderVault, VaultAddr: "http://127.0.0.1:8200", VaultToken: "root"})
	require.NoError(t, err)
	assert.Equal(t, ProviderVault, src.Name())
	assert.Equal(t, "secret", src.(*VaultSource).mountPath)

	_, err = NewSource(Settings{Provider: "consul"})
	assert.EqualError(t, err, "unknown config provider: consul")
}

func TestVaultSource_EnvWins(t *testing.T) {
	t.Setenv("HCAPTCHA_SECRET", "from-env")

	src, err := NewVaultSource(Settings{VaultAddr: "http://127.0.0.1:1", VaultToken: "root"})
	require.NoError(t, err)

	val, err := src.Get("HCAPTCHA_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "from-env", val)
}

type stubSource map[string]string

func (s stubSource) Name() string { return "stub" }

func (s stubSource) Get(key string) (string, error) {
	if v, ok := s[key]; ok {
		return v, nil
	}
	return "", errors.New("missing")
}

func TestManager(t *testing.T) {
	m := NewManager(stubSource{"HCAPTCHA_SITEKEY": "site", "EMPTY": ""})

	val, err := m.Get("HCAPTCHA_SITEKEY")
	require.NoError(t, err)
	assert.Equal(t, "site", val)
	assert.Equal(t, "fallback", m.GetDefault("MISSING", "fallback"))
	assert.Equal(t, "fallback", m.GetDefault("EMPTY", "fallback"))
	assert.Equal(t, "stub", m.SourceName())
}

func TestDefaultManager(t *testing.T) {
	t.Setenv("CONFIG_PROVIDER", ProviderEnv)
	t.Setenv("HCAPTCHA_SECRET", "0x0000000000000000000000000000000000000000")

	assert.Equal(t, "0x0000000000000000000000000000000000000000", MustGet("HCAPTCHA_SECRET"))
	assert.Equal(t, "8080", GetDefault("HCAPTCHA_TEST_UNSET_PORT", "8080"))
	assert.Panics(t, func() { MustGet("HCAPTCHA_TEST_UNSET_SECRET") })
}
