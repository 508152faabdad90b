// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/utils"
)

// auth is the token verifier guarding protected routes.
//
// The "authorization" header carries the raw token; a "Bearer " prefix is
// accepted as well. Requests without a token are rejected with 403
// ([ErrTokenNotProvided]), requests whose token fails verification with 401
// ([ErrInvalidToken]). On success the user id is stored in the request context
// under [utils.UserIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := utils.TokenFromHeader(r.Header.Get("Authorization"))
		if tokenString == "" {
			log.Warn().Err(ErrTokenNotProvided).Send()
			_, _ = utils.WriteMessage(w, ErrTokenNotProvided.Error(), http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			_, _ = utils.WriteMessage(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
