// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
)

func (h *Handler) provisionVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var request models.ProvisionVaultRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	request.Caller = caller

	view, err := h.services.VaultService.ProvisionVault(r.Context(), request)
	if err != nil {
		writeServiceError(w, log, err, "vault was not provisioned")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) provisionAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var request models.ProvisionAssetRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	request.Vault = addressParam(r, "vault")
	request.Caller = caller

	asset, err := h.services.VaultService.ProvisionAsset(r.Context(), request)
	if err != nil {
		writeServiceError(w, log, err, "asset was not provisioned")
		return
	}

	_, _ = utils.WriteJSON(w, asset, http.StatusCreated)
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.VaultService.GetVault(r.Context(), addressParam(r, "vault"))
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "error reading vault")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

type consentFunc func(context.Context, models.ConsentRequest) (models.VaultView, error)

func (h *Handler) grantConsent(w http.ResponseWriter, r *http.Request) {
	h.consent(w, r, h.services.VaultService.GrantConsent)
}

func (h *Handler) clearConsent(w http.ResponseWriter, r *http.Request) {
	h.consent(w, r, h.services.VaultService.ClearConsent)
}

// consent runs a gate operation. The request carries no body: the vault
// comes from the path and the caller from the token.
func (h *Handler) consent(w http.ResponseWriter, r *http.Request, apply consentFunc) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	view, err := apply(r.Context(), models.ConsentRequest{Vault: addressParam(r, "vault"), Caller: caller})
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "consent was not changed")
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) listOperations(w http.ResponseWriter, r *http.Request) {
	query := models.OperationsQuery{Vault: addressParam(r, "vault")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.WriteError(w, errInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		query.Limit = limit
	}

	operations, err := h.services.VaultService.ListOperations(r.Context(), query)
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "error listing operations")
		return
	}

	_, _ = utils.WriteJSON(w, operations, http.StatusOK)
}
