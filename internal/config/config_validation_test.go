package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(defaults())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "https address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "https://wise.example.com" }},
		{name: "empty dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "address without scheme", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "localhost:8000" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "ftp address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "ftp://localhost" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "weak kdf", mutate: func(cfg *ClientConfig) { cfg.Vault.KDFIterations = 99_999 }, wantErr: ErrInvalidVaultConfigs},
		{name: "minimum kdf", mutate: func(cfg *ClientConfig) { cfg.Vault.KDFIterations = MinKDFIterations }},
		{name: "zero passphrase length", mutate: func(cfg *ClientConfig) { cfg.Vault.MinPassphraseLength = 0 }, wantErr: ErrInvalidVaultConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ServerConfig{HTTPAddress: "localhost:8000", RequestTimeout: time.Second}).validate())
	assert.ErrorIs(t, (&ServerConfig{RequestTimeout: time.Second}).validate(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&ServerConfig{HTTPAddress: "localhost:8000"}).validate(), ErrInvalidServerConfigs)
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := NewClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://a:1", RequestTimeout: time.Minute},
		Storage: Storage{DB: DB{DSN: "x.db"}, Session: Session{Path: "s.bolt"}},
		Vault:   Vault{KDFIterations: 1, MinPassphraseLength: 2, ClearOnFormatError: true},
	})

	assert.Equal(t, ClientAdapter{HTTPAddress: "http://a:1", RequestTimeout: time.Minute}, cfg.Adapter)
	assert.Equal(t, "x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "s.bolt", cfg.Storage.Session.Path)
	assert.Equal(t, ClientVault{KDFIterations: 1, MinPassphraseLength: 2, ClearOnFormatError: true}, cfg.Vault)
}
