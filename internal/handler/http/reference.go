// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/utils"
)

func (h *Handler) listDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.services.ReferenceService.ListDistricts(r.Context())
	if err != nil {
		writeError(w, r, err, "listing districts failed")
		return
	}

	_, _ = utils.WriteJSON(w, districts, http.StatusOK)
}

func (h *Handler) listMunicipalities(w http.ResponseWriter, r *http.Request) {
	municipalities, err := h.services.ReferenceService.ListMunicipalities(r.Context())
	if err != nil {
		writeError(w, r, err, "listing municipalities failed")
		return
	}

	_, _ = utils.WriteJSON(w, municipalities, http.StatusOK)
}
