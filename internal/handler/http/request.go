// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// callerFrom returns the caller stored by the auth middleware.
func callerFrom(w http.ResponseWriter, r *http.Request) (models.Address, bool) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(errNoCaller.Error())
		utils.WriteError(w, errNoCaller.Error(), http.StatusUnauthorized)
		return "", false
	}
	return caller, true
}

func addressParam(r *http.Request, name string) models.Address {
	return models.Address(chi.URLParam(r, name))
}
