// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppInfo(r.Context())

	_, _ = utils.WriteJSON(w, buildInfo, http.StatusOK)
}

func (h *Handler) healthcheck(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteText(w, "ok", http.StatusOK)
}
