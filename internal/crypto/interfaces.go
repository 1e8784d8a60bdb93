// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/ed25519"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService protects the ed25519 signing key a vaultctl user
// authenticates with. The key never leaves the client: on disk it is sealed
// under a key-encryption key derived from a passphrase.
//
// Scheme:
//
//	Salt      = GenerateSalt()                       (16 random bytes, public)
//	KEK       = DeriveKEK(passphrase, Salt)          (Argon2id)
//	Sealed    = Seal(seed, KEK, address)             (AES-256-GCM, nonce || ciphertext)
type KeyChainService interface {
	// GenerateSigningKey creates a new ed25519 key pair from the OS CSPRNG.
	GenerateSigningKey() (ed25519.PrivateKey, error)

	GenerateSalt() ([]byte, error)

	// DeriveKEK derives a 256-bit key from passphrase and salt via Argon2id
	// with the service's cost parameters.
	DeriveKEK(passphrase string, salt []byte) []byte

	// Seal encrypts plaintext with KEK. additionalData is authenticated but
	// not encrypted.
	Seal(plaintext, KEK, additionalData []byte) ([]byte, error)

	// Open reverses Seal. It fails with [ErrWrongPassphrase] when the tag does
	// not verify.
	Open(sealed, KEK, additionalData []byte) ([]byte, error)

	// EncryptKey seals key under passphrase and returns the key file.
	EncryptKey(key ed25519.PrivateKey, passphrase string) (KeyFile, error)

	// DecryptKey opens file with passphrase and checks that the recovered
	// key matches the recorded address.
	DecryptKey(file KeyFile, passphrase string) (ed25519.PrivateKey, error)
}
