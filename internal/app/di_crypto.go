package app

import (
	"fmt"

	cryptoDomain "github.com/edulearn/cardvault/internal/crypto/domain"
	cryptoService "github.com/edulearn/cardvault/internal/crypto/service"
)

// EncryptionKey returns the card encryption key loaded from the environment.
func (c *Container) EncryptionKey() (*cryptoDomain.EncryptionKey, error) {
	var err error
	c.encryptionKeyInit.Do(func() {
		c.encryptionKey, err = c.initEncryptionKey()
		if err != nil {
			c.initErrors["encryptionKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["encryptionKey"]; exists {
		return nil, storedErr
	}
	return c.encryptionKey, nil
}

// FieldCipher returns the authenticated field cipher.
func (c *Container) FieldCipher() (cryptoService.FieldCipher, error) {
	var err error
	c.fieldCipherInit.Do(func() {
		c.fieldCipher, err = c.initFieldCipher()
		if err != nil {
			c.initErrors["fieldCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldCipher"]; exists {
		return nil, storedErr
	}
	return c.fieldCipher, nil
}

// IntegrityHasher returns the integrity hasher service.
func (c *Container) IntegrityHasher() cryptoService.IntegrityHasher {
	c.integrityHasherInit.Do(func() {
		c.integrityHasher = cryptoService.NewSHA256IntegrityHasher()
	})
	return c.integrityHasher
}

// initEncryptionKey loads the encryption key from the environment with fail-fast validation.
func (c *Container) initEncryptionKey() (*cryptoDomain.EncryptionKey, error) {
	key, err := cryptoDomain.LoadEncryptionKeyFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load encryption key: %w", err)
	}
	return key, nil
}

// initFieldCipher creates the AES-GCM field cipher using the encryption key.
func (c *Container) initFieldCipher() (cryptoService.FieldCipher, error) {
	key, err := c.EncryptionKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get encryption key for field cipher: %w", err)
	}

	cipher, err := cryptoService.NewAESGCMFieldCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create field cipher: %w", err)
	}

	return cipher, nil
}
