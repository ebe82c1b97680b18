package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	cryptoDomain "github.com/allisson/sealbox/internal/crypto/domain"
	"github.com/allisson/sealbox/internal/errors"
)

// KeeperKeyProvider resolves the service data key from the key store,
// generating it on first use.
//
// Resolution order:
//  1. Return the cached cipher when the key was already resolved.
//  2. Load the wrapped key by name and unwrap it through the KMS keeper.
//  3. When no key exists yet, generate 32 random bytes, wrap them through the
//     keeper, and insert the record. If a concurrent process inserts first,
//     the unique constraint rejects ours and the stored key is loaded
//     instead, so exactly one key ever exists per name.
//
// In-process concurrent first-use calls are collapsed by singleflight, and
// the resolved cipher is published through an atomic pointer, so steady-state
// resolution is a single atomic load. Raw key bytes are zeroed as soon as the
// cipher's key schedule is initialized; only the wrapped form is persisted.
//
// A failed resolution caches nothing. Every error is reported as
// cryptoDomain.ErrKeyUnavailable and the next call retries from scratch.
type KeeperKeyProvider struct {
	keeper  cryptoDomain.Keeper
	repo    KeyRepository
	keyName string
	logger  *slog.Logger
	cipher  atomic.Pointer[AESGCMCipher]
	group   singleflight.Group
}

// NewKeeperKeyProvider creates a key provider for the named data key.
func NewKeeperKeyProvider(
	keeper cryptoDomain.Keeper,
	repo KeyRepository,
	keyName string,
	logger *slog.Logger,
) *KeeperKeyProvider {
	return &KeeperKeyProvider{
		keeper:  keeper,
		repo:    repo,
		keyName: keyName,
		logger:  logger,
	}
}

// ResolveKey returns the cipher for the service data key.
func (p *KeeperKeyProvider) ResolveKey(ctx context.Context) (*AESGCMCipher, error) {
	if cipher := p.cipher.Load(); cipher != nil {
		return cipher, nil
	}

	result, err, _ := p.group.Do(p.keyName, func() (any, error) {
		if cipher := p.cipher.Load(); cipher != nil {
			return cipher, nil
		}

		cipher, err := p.loadOrCreate(ctx)
		if err != nil {
			return nil, err
		}

		p.cipher.Store(cipher)

		return cipher, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*AESGCMCipher), nil
}

func (p *KeeperKeyProvider) loadOrCreate(ctx context.Context) (*AESGCMCipher, error) {
	dataKey, err := p.repo.GetByName(ctx, p.keyName)
	switch {
	case err == nil:
		return p.unwrap(ctx, dataKey)
	case errors.Is(err, errors.ErrNotFound):
		return p.create(ctx)
	default:
		return nil, keyUnavailable(err)
	}
}

func (p *KeeperKeyProvider) create(ctx context.Context) (*AESGCMCipher, error) {
	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, keyUnavailable(err)
	}
	defer cryptoDomain.Zero(key)

	wrapped, err := p.keeper.Encrypt(ctx, key)
	if err != nil {
		return nil, keyUnavailable(err)
	}

	dataKey := cryptoDomain.NewDataKey(p.keyName, wrapped)
	if err := p.repo.Create(ctx, dataKey); err != nil {
		// A concurrent process inserted first. The stored key wins so every
		// process resolves the same material.
		stored, getErr := p.repo.GetByName(ctx, p.keyName)
		if getErr != nil {
			return nil, keyUnavailable(err)
		}

		p.logger.Info("data key already created by another process",
			slog.String("key_id", stored.ID.String()),
			slog.String("key_name", p.keyName),
		)

		return p.unwrap(ctx, stored)
	}

	p.logger.Info("data key created",
		slog.String("key_id", dataKey.ID.String()),
		slog.String("key_name", p.keyName),
	)

	cipher, err := NewAESGCM(dataKey.ID.String(), key)
	if err != nil {
		return nil, keyUnavailable(err)
	}

	return cipher, nil
}

func (p *KeeperKeyProvider) unwrap(ctx context.Context, dataKey *cryptoDomain.DataKey) (*AESGCMCipher, error) {
	key, err := p.keeper.Decrypt(ctx, dataKey.EncryptedKey)
	if err != nil {
		return nil, keyUnavailable(err)
	}
	defer cryptoDomain.Zero(key)

	cipher, err := NewAESGCM(dataKey.ID.String(), key)
	if err != nil {
		return nil, keyUnavailable(err)
	}

	return cipher, nil
}

// keyUnavailable tags key store and keeper failures with the key-unavailable
// kind while keeping the cause in the chain.
func keyUnavailable(err error) error {
	return fmt.Errorf("%w: %w", cryptoDomain.ErrKeyUnavailable, err)
}
