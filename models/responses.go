// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic {"message": ...} body used for errors and
// simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProtectedResponse is returned by the token-protected demo route.
type ProtectedResponse struct {
	Message string   `json:"message"`
	User    Identity `json:"user"`
}

// Identity is the decoded identity attached to an authenticated request.
type Identity struct {
	ID int64 `json:"id"`
}

// SendMessageResponse is returned by POST /mensagem. Status distinguishes a
// send that also created the connection from a direct insert.
type SendMessageResponse struct {
	Status        string  `json:"message"`
	NewConnection bool    `json:"nova_conexao"`
	Message       Message `json:"mensagem"`
}
