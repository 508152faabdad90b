// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/utils"
	"github.com/MKhiriev/go-classifieds/internal/validators"
	"github.com/MKhiriev/go-classifieds/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := validators.DecodeAndValidate(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid register request")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.ToUser(), req.Password)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")

	_, _ = utils.WriteJSON(w, models.RegisterResponse{User: registeredUser, Token: token.String()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := validators.DecodeAndValidate(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid login request")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, models.LoginResponse{Token: token.String(), User: foundUser}, http.StatusOK)
}

func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		_, _ = utils.WriteMessage(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, models.ProtectedResponse{
		Message: "access granted",
		User:    models.Identity{ID: userID},
	}, http.StatusOK)
}
