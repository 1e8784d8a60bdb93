// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/ed25519"
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/custody-vault/models"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// challengePrefix namespaces the signed authentication message so the key
// cannot be tricked into signing it for another protocol.
const challengePrefix = "custody-vault:auth:"

var ErrInvalidSignature = errors.New("invalid signature")

// AuthChallenge returns the message a caller signs to obtain a token.
func AuthChallenge(timestamp int64) []byte {
	return []byte(challengePrefix + strconv.FormatInt(timestamp, 10))
}

// SignChallenge signs the challenge for timestamp and returns the base58
// encoded signature.
func SignChallenge(key ed25519.PrivateKey, timestamp int64) string {
	return base58.Encode(ed25519.Sign(key, AuthChallenge(timestamp)))
}

// VerifyChallenge checks that signature is a valid signature by caller over
// the challenge for timestamp.
func VerifyChallenge(caller models.Address, timestamp int64, signature string) error {
	pub, err := caller.PublicKey()
	if err != nil {
		return err
	}

	sig := base58.Decode(signature)
	if len(sig) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}

	if !ed25519.Verify(pub, AuthChallenge(timestamp), sig) {
		return ErrInvalidSignature
	}

	return nil
}

// WithinWindow reports whether timestamp (unix seconds) lies within window
// of now in either direction.
func WithinWindow(timestamp int64, now time.Time, window time.Duration) bool {
	delta := now.Sub(time.Unix(timestamp, 0))
	if delta < 0 {
		delta = -delta
	}
	return delta <= window
}
