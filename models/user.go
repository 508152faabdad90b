// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered account of the classifieds application.
// It is created on registration and read on login and profile lookups.
type User struct {
	// ID is the server-generated identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"nome"`

	// UserType is a free-form role tag (e.g. "particular", "empresa").
	UserType string `json:"tipoUser"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never serialized into any response.
	PasswordHash string `json:"-"`

	// Coordinates holds the address coordinates as provided by the client.
	Coordinates string `json:"coordenadasMorada"`

	// DistrictID references the district the user lives in.
	DistrictID int64 `json:"id_dist"`

	// MunicipalityID references the municipality the user lives in.
	MunicipalityID int64 `json:"id_munic"`

	// TaxID is the optional tax identification number.
	TaxID *string `json:"nif,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "Utilizador"
}
