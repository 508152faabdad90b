// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/login"},
	{http.MethodPost, "/register"},
	{http.MethodGet, "/protected"},
	{http.MethodGet, "/distritos"},
	{http.MethodPost, "/distritos"},
	{http.MethodGet, "/municipios"},
	{http.MethodPost, "/municipios"},
	{http.MethodGet, "/anuncios"},
	{http.MethodPost, "/anuncios"},
	{http.MethodGet, "/utilizador"},
	{http.MethodGet, "/comentarios"},
	{http.MethodPost, "/comentarios"},
	{http.MethodGet, "/mensagem"},
	{http.MethodPost, "/mensagem"},
	{http.MethodGet, "/conexoes"},
	{http.MethodGet, "/healthcheck"},
	{http.MethodPost, "/healthcheck"},
	{http.MethodGet, "/version"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	registered := map[routeCase]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[routeCase{method, route}] = true
		return nil
	})
	require.NoError(t, err)

	for _, rc := range expectedRoutes {
		assert.Truef(t, registered[rc], "route %s %s is not registered", rc.method, rc.path)
	}
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	tests := []routeCase{
		{http.MethodDelete, "/anuncios"},
		{http.MethodPut, "/utilizador"},
		{http.MethodGet, "/login"},
		{http.MethodPost, "/conexoes"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"message":"not found"}`, rec.Body.String())
		})
	}
}

func TestInit_UnknownPath(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"not found"}`, rec.Body.String())
}

func TestInit_HealthcheckAndTraceHeader(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	}
}

func TestInit_CORSPreflight(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	req := httptest.NewRequest(http.MethodOptions, "/anuncios", nil)
	req.Header.Set("Origin", "https://app.example.pt")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
