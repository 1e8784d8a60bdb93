// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/custody-vault/models"
)

const (
	keyFileVersion = 1
	kdfArgon2id    = "argon2id"
)

// KeyFile is the on-disk form of an encrypted signing key.
type KeyFile struct {
	Version int `json:"version"`

	// Address is the public identity of the key. It is readable without the
	// passphrase.
	Address models.Address `json:"address"`

	KDF KDFParams `json:"kdf"`

	// Ciphertext is base64(nonce ‖ AES-GCM(seed)).
	Ciphertext string `json:"ciphertext"`
}

type KDFParams struct {
	Name    string `json:"name"`
	Salt    string `json:"salt"`
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
}

// WriteKeyFile writes file to path with owner-only permissions. An existing
// file is never overwritten.
func WriteKeyFile(path string, file KeyFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode key file: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrKeyFileExists, path)
		}
		return fmt.Errorf("create key file: %w", err)
	}

	if _, err = f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("write key file: %w", err)
	}
	return f.Close()
}

func ReadKeyFile(path string) (KeyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyFile{}, fmt.Errorf("read key file: %w", err)
	}

	var file KeyFile
	if err = json.Unmarshal(data, &file); err != nil {
		return KeyFile{}, fmt.Errorf("%w: %v", ErrCorruptedKeyFile, err)
	}
	if !file.Address.Valid() {
		return KeyFile{}, fmt.Errorf("%w: invalid address", ErrCorruptedKeyFile)
	}
	return file, nil
}
