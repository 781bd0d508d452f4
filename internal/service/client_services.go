package service

import (
	"github.com/MKhiriev/go-wise/internal/adapter"
	"github.com/MKhiriev/go-wise/internal/config"
	"github.com/MKhiriev/go-wise/internal/crypto"
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/store"
	"github.com/MKhiriev/go-wise/internal/validators"
)

// ClientServices groups the services used by the terminal client.
type ClientServices struct {
	VaultService    ClientVaultService
	AnalysisService ClientAnalysisService
}

// NewClientServices builds the vault on top of storages and hands it to the
// analysis service as its API key source.
func NewClientServices(
	storages *store.ClientStorages,
	analysisAdapter adapter.AnalysisAdapter,
	cfg config.ClientVault,
	logger *logger.Logger,
) *ClientServices {
	validator := validators.NewVaultValidator(cfg.MinPassphraseLength)
	keychain := crypto.NewKeyChainService(crypto.WithIterations(cfg.KDFIterations))
	serializer := crypto.NewEnvelopeSerializer(validator)

	vault := NewClientVaultService(storages, keychain, serializer, validator, VaultOptions{
		ClearOnFormatError: cfg.ClearOnFormatError,
	}, logger)

	return &ClientServices{
		VaultService:    vault,
		AnalysisService: NewClientAnalysisService(analysisAdapter, vault, logger),
	}
}
