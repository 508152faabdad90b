// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Responses of the token verifier. The wording is part of the public API.
var (
	// ErrTokenNotProvided is returned with 403 when the request carries no
	// token in its "authorization" header.
	ErrTokenNotProvided = errors.New("forbidden, token not provided")

	// ErrInvalidToken is returned with 401 when the token cannot be verified.
	ErrInvalidToken = errors.New("unauthorized, invalid token")
)

const internalErrorMessage = "internal server error"
