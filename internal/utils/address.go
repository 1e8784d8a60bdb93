// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"hash"

	"github.com/MKhiriev/custody-vault/models"
	"golang.org/x/crypto/sha3"
)

// Address derivation namespaces.
const (
	NamespaceVault   = "vault_data"
	NamespaceMint    = "mint"
	NamespaceAccount = "account"
)

// DeriveAddress deterministically derives a record address from a namespace
// and an ordered list of seed addresses. The same inputs always produce the
// same address; each seed is length-prefixed so seed boundaries cannot be
// shifted to collide.
func DeriveAddress(namespace string, seeds ...models.Address) models.Address {
	h := sha3.New256()
	writeSeed(h, []byte(namespace))
	for _, seed := range seeds {
		writeSeed(h, []byte(seed))
	}

	addr, _ := models.AddressFromBytes(h.Sum(nil))
	return addr
}

func writeSeed(h hash.Hash, b []byte) {
	_, _ = h.Write([]byte{byte(len(b) >> 8), byte(len(b))})
	_, _ = h.Write(b)
}

// VaultAddress returns the vault record address of an administrator.
func VaultAddress(administrator models.Address) models.Address {
	return DeriveAddress(NamespaceVault, administrator)
}

// MintAddress returns the asset address provisioned by an administrator.
func MintAddress(administrator models.Address) models.Address {
	return DeriveAddress(NamespaceMint, administrator)
}

// AccountAddress returns the account address of owner for asset.
func AccountAddress(owner, asset models.Address) models.Address {
	return DeriveAddress(NamespaceAccount, owner, asset)
}
