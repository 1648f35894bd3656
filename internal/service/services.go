package service

import (
	"time"

	"github.com/avdeev/go-device-vault/internal/crypto"
	"github.com/avdeev/go-device-vault/internal/logger"
	"github.com/avdeev/go-device-vault/internal/store"
	"github.com/avdeev/go-device-vault/internal/validators"
)

type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

func NewServices(storages *store.Storages, cipher crypto.CipherService, validator validators.CredentialValidator, keys KeyWiper, sessionTTL time.Duration, log *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.Cache, cipher, validator, keys, sessionTTL, log),
		VaultService: NewVaultService(storages.Cache, cipher, log),
	}
}
