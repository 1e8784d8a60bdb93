// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
)

// openAccount opens an empty account of the requested asset owned by the
// caller.
func (h *Handler) openAccount(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var request models.OpenAccountRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	request.Caller = caller

	view, err := h.services.VaultService.OpenAccount(r.Context(), request)
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "account was not opened")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.VaultService.GetAccount(r.Context(), addressParam(r, "account"))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "error reading account")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.services.VaultService.GetAsset(r.Context(), addressParam(r, "asset"))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "error reading asset")
		return
	}

	_, _ = utils.WriteJSON(w, asset, http.StatusOK)
}
