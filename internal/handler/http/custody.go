// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
)

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var request models.WithdrawRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	request.Vault = addressParam(r, "vault")
	request.Caller = caller

	op, err := h.services.VaultService.Withdraw(r.Context(), request)
	h.writeOperation(w, r, op, err)
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var request models.TransferRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	request.Vault = addressParam(r, "vault")
	request.Caller = caller

	op, err := h.services.VaultService.Transfer(r.Context(), request)
	h.writeOperation(w, r, op, err)
}

func (h *Handler) burn(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var request models.BurnRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	request.Vault = addressParam(r, "vault")
	request.Caller = caller

	op, err := h.services.VaultService.Burn(r.Context(), request)
	h.writeOperation(w, r, op, err)
}

func (h *Handler) writeOperation(w http.ResponseWriter, r *http.Request, op models.Operation, err error) {
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "custody operation failed")
		return
	}

	_, _ = utils.WriteJSON(w, op, http.StatusOK)
}
