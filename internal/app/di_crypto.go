package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	cryptoRepository "github.com/allisson/sealbox/internal/crypto/repository"
	cryptoService "github.com/allisson/sealbox/internal/crypto/service"
)

// KMSService returns the KMS service used to open keepers.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = c.initKMSService()
	})
	return c.kmsService
}

// Keeper returns the keeper that wraps and unwraps data key material.
func (c *Container) Keeper() (cryptoDomain.Keeper, error) {
	var err error
	c.keeperInit.Do(func() {
		c.keeper, err = c.initKeeper()
		if err != nil {
			c.initErrors["keeper"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keeper"]; exists {
		return nil, storedErr
	}
	return c.keeper, nil
}

// KeyRepository returns the data key repository based on database driver.
func (c *Container) KeyRepository() (cryptoService.KeyRepository, error) {
	var err error
	c.keyRepositoryInit.Do(func() {
		c.keyRepository, err = c.initKeyRepository()
		if err != nil {
			c.initErrors["keyRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyRepository"]; exists {
		return nil, storedErr
	}
	return c.keyRepository, nil
}

// KeyProvider returns the key provider that resolves the service data key.
func (c *Container) KeyProvider() (cryptoService.KeyProvider, error) {
	var err error
	c.keyProviderInit.Do(func() {
		c.keyProvider, err = c.initKeyProvider()
		if err != nil {
			c.initErrors["keyProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyProvider"]; exists {
		return nil, storedErr
	}
	return c.keyProvider, nil
}

// FieldCodec returns the codec that seals and opens protected fields.
func (c *Container) FieldCodec() (*cryptoService.FieldCodec, error) {
	var err error
	c.fieldCodecInit.Do(func() {
		c.fieldCodec, err = c.initFieldCodec()
		if err != nil {
			c.initErrors["fieldCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldCodec"]; exists {
		return nil, storedErr
	}
	return c.fieldCodec, nil
}

// initKMSService creates the KMS service for wrapping and unwrapping data keys.
func (c *Container) initKMSService() cryptoService.KMSService {
	return cryptoService.NewKMSService()
}

// initKeeper opens the keeper for the configured KMS key URI.
func (c *Container) initKeeper() (cryptoDomain.Keeper, error) {
	if c.config.KMSKeyURI == "" {
		return nil, fmt.Errorf("KMS_KEY_URI is required")
	}

	kmsService := c.KMSService()

	keeper, err := kmsService.OpenKeeper(context.Background(), c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open keeper: %w", err)
	}
	return keeper, nil
}

// initKeyRepository creates the data key repository based on the database driver.
func (c *Container) initKeyRepository() (cryptoService.KeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return cryptoRepository.NewPostgreSQLKeyRepository(db), nil
	case "mysql":
		return cryptoRepository.NewMySQLKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initKeyProvider creates the key provider with all its dependencies.
func (c *Container) initKeyProvider() (cryptoService.KeyProvider, error) {
	keeper, err := c.Keeper()
	if err != nil {
		return nil, fmt.Errorf("failed to get keeper for key provider: %w", err)
	}

	keyRepository, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for key provider: %w", err)
	}

	logger := c.Logger()

	return cryptoService.NewKeeperKeyProvider(
		keeper,
		keyRepository,
		c.config.EncryptionKeyName,
		logger,
	), nil
}

// initFieldCodec creates the field codec backed by the key provider.
func (c *Container) initFieldCodec() (*cryptoService.FieldCodec, error) {
	keyProvider, err := c.KeyProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get key provider for field codec: %w", err)
	}

	return cryptoService.NewFieldCodec(keyProvider), nil
}
