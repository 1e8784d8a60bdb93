// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher signs bodies with HMAC-SHA256 under one key. The hash.Hash values
// are pooled since every API response is signed.
type Hasher struct {
	pool sync.Pool
}

func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{pool: sync.Pool{
		New: func() any { return hmac.New(sha256.New, key) },
	}}
}

// Sum returns the hex digest of data.
func (h *Hasher) Sum(data []byte) string {
	mac := h.pool.Get().(hash.Hash)
	defer h.pool.Put(mac)

	mac.Reset()
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares the digest of data with expected in constant time.
func (h *Hasher) Verify(data []byte, expected string) bool {
	return hmac.Equal([]byte(h.Sum(data)), []byte(expected))
}

// HashString is the one-off form of [Hasher.Sum], used by vaultctl.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
