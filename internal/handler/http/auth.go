// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
)

// issueToken exchanges a signed timestamp challenge for a bearer token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.TokenRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	response, err := h.services.AuthService.IssueToken(r.Context(), request)
	if err != nil {
		writeServiceError(w, log, err, "token was not issued")
		return
	}

	w.Header().Set("Authorization", "Bearer "+response.Token)
	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
