// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// auth
	router.Post("/login", h.login)
	router.Post("/register", h.register)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/protected", h.protected)
	})

	// reference data; POST is kept as a read alias
	router.Get("/distritos", h.listDistricts)
	router.Post("/distritos", h.listDistricts)
	router.Get("/municipios", h.listMunicipalities)
	router.Post("/municipios", h.listMunicipalities)

	router.Get("/anuncios", h.listAds)
	router.Post("/anuncios", h.createAd)

	router.Get("/utilizador", h.getUser)

	router.Get("/comentarios", h.listComments)
	router.Post("/comentarios", h.createComment)

	router.Get("/mensagem", h.getConversation)
	router.Post("/mensagem", h.sendMessage)

	router.Get("/conexoes", h.getConnections)

	router.Get("/healthcheck", h.healthcheck)
	router.Post("/healthcheck", h.healthcheck)
	router.Get("/version", h.getServerVersion)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = utils.WriteMessage(w, "not found", http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
