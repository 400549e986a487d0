package config

import (
	"context"
	"fmt"
	"os"

	vault "github.com/hashicorp/vault/api"
)

// VaultSource fetches values from a HashiCorp Vault KV v2 mount.
type VaultSource struct {
	client    *vault.Client
	mountPath string
}

func NewVaultSource(s Settings) (*VaultSource, error) {
	if s.VaultAddr == "" || s.VaultToken == "" {
		return nil, fmt.Errorf("vault config requires VAULT_ADDR and VAULT_TOKEN")
	}
	mount := s.VaultPath
	if mount == "" {
		mount = "secret"
	}

	client, err := vault.NewClient(&vault.Config{Address: s.VaultAddr})
	if err != nil {
		return nil, fmt.Errorf("vault client init error: %w", err)
	}
	client.SetToken(s.VaultToken)
	return &VaultSource{
		client:    client,
		mountPath: mount,
	}, nil
}

func (v *VaultSource) Name() string {
	return ProviderVault
}

// Get prefers an environment variable named key, then reads field "value" of
// the secret at "<mount>/data/<key>".
func (v *VaultSource) Get(key string) (string, error) {
	if val := os.Getenv(key); val != "" {
		return val, nil
	}

	secret, err := v.client.KVv2(v.mountPath).Get(context.Background(), key)
	if err != nil {
		return "", fmt.Errorf("vault read error: %w", err)
	}
	if val, ok := secret.Data["value"].(string); ok && val != "" {
		return val, nil
	}
	return "", fmt.Errorf("no 'value' field found in vault secret: %s", key)
}
