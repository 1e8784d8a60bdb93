// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/service"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/internal/utils"
)

// errorStatusMap is checked in order; the first sentinel matched by
// [errors.Is] decides the status.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidAmount, http.StatusBadRequest},
	{service.ErrInvalidApprovers, http.StatusBadRequest},
	{service.ErrSameAccount, http.StatusBadRequest},
	{service.ErrAssetMismatch, http.StatusBadRequest},

	{service.ErrInvalidSignature, http.StatusUnauthorized},
	{service.ErrChallengeExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrUnauthorized, http.StatusForbidden},

	{service.ErrInsufficientConsent, http.StatusConflict},
	{service.ErrAssetAlreadyProvisioned, http.StatusConflict},
	{service.ErrAssetNotProvisioned, http.StatusConflict},
	{store.ErrVaultAlreadyExists, http.StatusConflict},
	{store.ErrAccountAlreadyExists, http.StatusConflict},
	{store.ErrAssetAlreadyExists, http.StatusConflict},
	{store.ErrConcurrentUpdate, http.StatusConflict},

	{service.ErrInsufficientBalance, http.StatusUnprocessableEntity},

	{store.ErrVaultNotFound, http.StatusNotFound},
	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrAssetNotFound, http.StatusNotFound},

	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and writes it with the mapped status. Internal
// failures are reported without details.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
