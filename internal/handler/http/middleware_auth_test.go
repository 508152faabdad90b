// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-classifieds/internal/service"
	"github.com/MKhiriev/go-classifieds/internal/utils"
	"github.com/MKhiriev/go-classifieds/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestHandler(t *testing.T) *Handler {
	t.Helper()
	auth := &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Claims: models.Claims{UserID: 77}, SignedString: tokenString}, nil
		},
	}
	return newTestHandler(t, &service.Services{AuthService: auth})
}

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{
			name:        "no header",
			wantStatus:  http.StatusForbidden,
			wantMessage: "forbidden, token not provided",
		},
		{
			name:        "bearer without token",
			header:      "Bearer ",
			wantStatus:  http.StatusForbidden,
			wantMessage: "forbidden, token not provided",
		},
		{
			name:        "invalid token",
			header:      "forged-token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "unauthorized, invalid token",
		},
		{
			name:       "raw token",
			header:     "good-token",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "bearer token",
			header:     "Bearer good-token",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthTestHandler(t)

			var gotUserID int64
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantMessage != "" {
				assert.JSONEq(t, `{"message":"`+tt.wantMessage+`"}`, rec.Body.String())
			}
			if tt.wantNext {
				assert.Equal(t, int64(77), gotUserID)
			}
		})
	}
}

func TestProtectedRoute(t *testing.T) {
	router := newAuthTestHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"access granted","user":{"id":77}}`, rec.Body.String())
}

func TestProtectedRoute_WithoutToken(t *testing.T) {
	router := newAuthTestHandler(t).Init()

	rec := doRequest(t, router, http.MethodGet, "/protected", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
