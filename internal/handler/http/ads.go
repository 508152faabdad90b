// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/utils"
	"github.com/MKhiriev/go-classifieds/internal/validators"
	"github.com/MKhiriev/go-classifieds/models"
)

const municipalityParam = "id_munic"

func (h *Handler) createAd(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdRequest
	if err := validators.DecodeAndValidate(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid ad")
		return
	}

	ad, err := h.services.AdService.CreateAd(r.Context(), req.ToAd())
	if err != nil {
		writeError(w, r, err, "ad creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, ad, http.StatusCreated)
}

func (h *Handler) listAds(w http.ResponseWriter, r *http.Request) {
	municipalityID, err := optionalQueryID(r, municipalityParam)
	if err != nil {
		writeError(w, r, err, "invalid ad filter")
		return
	}

	ads, err := h.services.AdService.ListAds(r.Context(), models.AdFilter{MunicipalityID: municipalityID})
	if err != nil {
		writeError(w, r, err, "listing ads failed")
		return
	}

	_, _ = utils.WriteJSON(w, ads, http.StatusOK)
}
