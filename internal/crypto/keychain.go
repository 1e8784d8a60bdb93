// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/custody-vault/models"
	"golang.org/x/crypto/argon2"
)

const (
	saltLength = 16
	kekLength  = 32
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. They are written into every key file so
	// that files stay readable after the defaults change.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewKeyChainService() KeyChainService {
	return newKeyChainService(1, 64*1024, 4)
}

func newKeyChainService(time, memory uint32, threads uint8) *keyChainService {
	return &keyChainService{
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
	}
}

func (k *keyChainService) GenerateSigningKey() (ed25519.PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return key, nil
}

func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func (k *keyChainService) DeriveKEK(passphrase string, salt []byte) []byte {
	return deriveKEK(passphrase, salt, k.argonTime, k.argonMemory, k.argonThreads)
}

func deriveKEK(passphrase string, salt []byte, time, memory uint32, threads uint8) []byte {
	return argon2.IDKey([]byte(passphrase), salt, time, memory, threads, kekLength)
}

// Seal implements [KeyChainService]. A random 12-byte nonce is prepended to
// the ciphertext: blob = nonce ‖ ciphertext.
func (k *keyChainService) Seal(plaintext, KEK, additionalData []byte) ([]byte, error) {
	gcm, err := newGCM(KEK)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, additionalData), nil
}

func (k *keyChainService) Open(sealed, KEK, additionalData []byte) ([]byte, error) {
	gcm, err := newGCM(KEK)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, ErrCorruptedKeyFile
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		// a wrong passphrase yields a wrong KEK and fails here
		return nil, ErrWrongPassphrase
	}
	return plaintext, nil
}

// EncryptKey implements [KeyChainService]. Only the 32-byte seed is sealed;
// the address is bound to the ciphertext as additional data.
func (k *keyChainService) EncryptKey(key ed25519.PrivateKey, passphrase string) (KeyFile, error) {
	if len(key) != ed25519.PrivateKeySize {
		return KeyFile{}, ErrInvalidKey
	}

	salt, err := k.GenerateSalt()
	if err != nil {
		return KeyFile{}, fmt.Errorf("generate salt: %w", err)
	}

	address := models.AddressFromPublicKey(key.Public().(ed25519.PublicKey))
	sealed, err := k.Seal(key.Seed(), k.DeriveKEK(passphrase, salt), []byte(address))
	if err != nil {
		return KeyFile{}, fmt.Errorf("seal key: %w", err)
	}

	return KeyFile{
		Version: keyFileVersion,
		Address: address,
		KDF: KDFParams{
			Name:    kdfArgon2id,
			Salt:    base64.StdEncoding.EncodeToString(salt),
			Time:    k.argonTime,
			Memory:  k.argonMemory,
			Threads: k.argonThreads,
		},
		Ciphertext: base64.StdEncoding.EncodeToString(sealed),
	}, nil
}

func (k *keyChainService) DecryptKey(file KeyFile, passphrase string) (ed25519.PrivateKey, error) {
	if file.Version != keyFileVersion || file.KDF.Name != kdfArgon2id {
		return nil, fmt.Errorf("%w: version %d, kdf %q", ErrUnsupportedKeyFile, file.Version, file.KDF.Name)
	}

	salt, err := base64.StdEncoding.DecodeString(file.KDF.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrCorruptedKeyFile, err)
	}
	sealed, err := base64.StdEncoding.DecodeString(file.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrCorruptedKeyFile, err)
	}

	KEK := deriveKEK(passphrase, salt, file.KDF.Time, file.KDF.Memory, file.KDF.Threads)
	seed, err := k.Open(sealed, KEK, []byte(file.Address))
	if err != nil {
		return nil, err
	}
	if len(seed) != ed25519.SeedSize {
		return nil, ErrCorruptedKeyFile
	}

	key := ed25519.NewKeyFromSeed(seed)
	if models.AddressFromPublicKey(key.Public().(ed25519.PublicKey)) != file.Address {
		return nil, ErrKeyMismatch
	}
	return key, nil
}

func newGCM(KEK []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(KEK)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
