// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every bearer token.
//
// UserID is serialized as the "id" claim so that the decoded identity has the
// shape {id}. The registered claims carry the issuer, subject, issue time and
// expiry.
type Claims struct {
	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"id"`

	jwt.RegisteredClaims
}

// Token wraps a signed bearer token together with its decoded claims.
type Token struct {
	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// UserID returns the user identifier carried by the token.
func (t Token) UserID() int64 {
	return t.Claims.UserID
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
