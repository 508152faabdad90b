// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/service"
	"github.com/MKhiriev/go-classifieds/internal/store"
	"github.com/MKhiriev/go-classifieds/internal/utils"
	"github.com/MKhiriev/go-classifieds/internal/validators"
)

// errorStatus pairs a sentinel with the status it maps to.
type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched in order, first hit wins. Infrastructure failures
// come first so a joined error (e.g. a failed rollback) always yields 500.
var errorStatuses = []errorStatus{
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{validators.ErrNotValidatable, http.StatusInternalServerError},

	{store.ErrEmailAlreadyRegistered, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrReferenceNotFound, http.StatusBadRequest},
	{store.ErrConstraintViolation, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrSelfMessage, http.StatusBadRequest},
	{service.ErrNoConnections, http.StatusNotFound},
	{service.ErrHashingPassword, http.StatusBadRequest},

	{validators.ErrInvalidBody, http.StatusBadRequest},
	{validators.ErrMissingField, http.StatusBadRequest},
	{validators.ErrInvalidField, http.StatusBadRequest},
}

// errorResponse maps err to a status code and the message shown to the
// client. Server-side failures always get a generic message.
func errorResponse(err error) (int, string) {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest, fieldErr.Error()
	}

	for _, m := range errorStatuses {
		if errors.Is(err, m.target) {
			if m.status >= http.StatusInternalServerError {
				return m.status, internalErrorMessage
			}
			return m.status, m.target.Error()
		}
	}

	return http.StatusInternalServerError, internalErrorMessage
}

// writeError logs err and writes the matching {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := errorResponse(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	_, _ = utils.WriteMessage(w, message, status)
}
