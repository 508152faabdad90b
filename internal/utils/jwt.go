// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-classifieds/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrUnexpectedSigning  = errors.New("unexpected signing method")
	ErrTokenHasNoUserID   = errors.New("token carries no user id")
)

const bearerScheme = "Bearer"

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID.
//
// The token carries the "id" claim plus the standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// An empty issuer or sign key, or a non-positive duration, is rejected with
// [ErrInvalidTokenParams] so that a misconfigured server can never issue
// tokens signed with an empty secret.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("classifieds", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - the signing method must be HMAC (alg "none" and asymmetric algorithms are refused)
//   - signature verification using tokenSignKey
//   - the iss claim must equal tokenIssuer
//   - the exp claim must be present and in the future
//   - the id claim must identify a user
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	if tokenSignKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigning, token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return models.Token{}, ErrTokenHasNoUserID
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// TokenFromHeader extracts the token from an authorization header value.
// The header carries the raw token; a "Bearer " prefix is tolerated.
// An empty result means no token was provided.
func TokenFromHeader(authorizationHeader string) string {
	fields := strings.Fields(authorizationHeader)
	switch {
	case len(fields) == 0:
		return ""
	case strings.EqualFold(fields[0], bearerScheme):
		if len(fields) == 2 {
			return fields[1]
		}
		if len(fields) == 1 {
			return ""
		}
	case len(fields) == 1:
		return fields[0]
	}

	return strings.TrimSpace(authorizationHeader)
}
