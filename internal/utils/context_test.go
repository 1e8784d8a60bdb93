// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/custody-vault/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestCallerCtxKey(t *testing.T) {
	if CallerCtxKey.String() != "caller" {
		t.Errorf("expected 'caller', got '%s'", CallerCtxKey.String())
	}
}

func TestGetCallerFromContext_Success(t *testing.T) {
	ctx := WithCaller(context.Background(), models.Address("caller-address"))

	caller, ok := GetCallerFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if caller != "caller-address" {
		t.Errorf("expected caller-address, got %s", caller)
	}
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	caller, ok := GetCallerFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if caller != "" {
		t.Errorf("expected empty caller, got %s", caller)
	}
}

func TestGetCallerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "plain-string")

	_, ok := GetCallerFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetCallerFromContext_Empty(t *testing.T) {
	ctx := WithCaller(context.Background(), "")

	_, ok := GetCallerFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for empty caller, got true")
	}
}

func TestGetCallerFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), models.Address("x"))

	_, ok := GetCallerFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
