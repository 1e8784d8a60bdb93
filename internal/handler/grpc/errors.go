// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"errors"

	"github.com/MKhiriev/custody-vault/internal/service"
	"github.com/MKhiriev/custody-vault/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	errMissingMetadata = status.Error(codes.Unauthenticated, "missing metadata")
	errMissingToken    = status.Error(codes.Unauthenticated, "missing bearer token")
	errNoCaller        = status.Error(codes.Unauthenticated, "no authenticated caller")
)

// grpcCodeMap is checked in order; the first sentinel matched by
// [errors.Is] decides the code.
var grpcCodeMap = []struct {
	err  error
	code codes.Code
}{
	{service.ErrInvalidDataProvided, codes.InvalidArgument},
	{service.ErrInvalidAmount, codes.InvalidArgument},
	{service.ErrInvalidApprovers, codes.InvalidArgument},
	{service.ErrSameAccount, codes.InvalidArgument},
	{service.ErrAssetMismatch, codes.InvalidArgument},

	{service.ErrInvalidSignature, codes.Unauthenticated},
	{service.ErrChallengeExpired, codes.Unauthenticated},
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated},

	{service.ErrUnauthorized, codes.PermissionDenied},

	{service.ErrInsufficientConsent, codes.FailedPrecondition},
	{service.ErrInsufficientBalance, codes.FailedPrecondition},
	{service.ErrAssetNotProvisioned, codes.FailedPrecondition},

	{service.ErrAssetAlreadyProvisioned, codes.AlreadyExists},
	{store.ErrVaultAlreadyExists, codes.AlreadyExists},
	{store.ErrAccountAlreadyExists, codes.AlreadyExists},
	{store.ErrAssetAlreadyExists, codes.AlreadyExists},

	{store.ErrConcurrentUpdate, codes.Aborted},

	{store.ErrVaultNotFound, codes.NotFound},
	{store.ErrAccountNotFound, codes.NotFound},
	{store.ErrAssetNotFound, codes.NotFound},
}

// toStatus converts a service error into a gRPC status error. Unknown
// errors become codes.Internal without details.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, entry := range grpcCodeMap {
		if errors.Is(err, entry.err) {
			return status.Error(entry.code, err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}
