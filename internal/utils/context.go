// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared across the
// application: typed context keys, deterministic address derivation,
// challenge signing, hashing, HTTP response writing, the resty client and
// JWT generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/custody-vault/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key under which transports store the authenticated
// caller address.
//
//	ctx := context.WithValue(ctx, utils.CallerCtxKey, models.Address("..."))
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext returns the authenticated caller address.
// ok is false when the value is missing, has the wrong type or is empty.
func GetCallerFromContext(ctx context.Context) (models.Address, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Address)
	if !ok || caller.IsZero() {
		return "", false
	}
	return caller, true
}

// WithCaller returns a copy of ctx carrying caller.
func WithCaller(ctx context.Context, caller models.Address) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}
