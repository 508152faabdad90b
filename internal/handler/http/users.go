// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/utils"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "user lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
