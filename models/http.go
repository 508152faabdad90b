// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name           string  `json:"nome" validate:"required"`
	UserType       string  `json:"tipoUser" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,maxbytes=72"`
	Coordinates    string  `json:"coordenadasMorada" validate:"required"`
	DistrictID     int64   `json:"id_dist" validate:"required"`
	MunicipalityID int64   `json:"id_munic" validate:"required"`
	TaxID          *string `json:"nif,omitempty"`
}

// ToUser converts the request into a [User] without a password hash.
func (r RegisterRequest) ToUser() User {
	return User{
		Name:           r.Name,
		UserType:       r.UserType,
		Email:          r.Email,
		Coordinates:    r.Coordinates,
		DistrictID:     r.DistrictID,
		MunicipalityID: r.MunicipalityID,
		TaxID:          r.TaxID,
	}
}

// CreateAdRequest is the body of POST /anuncios.
type CreateAdRequest struct {
	MunicipalityID int64  `json:"id_munic" validate:"required"`
	UserID         int64  `json:"id_user" validate:"required"`
	Title          string `json:"titulo" validate:"required"`
	Type           string `json:"tipo" validate:"required"`
	ImageLink      string `json:"link_imagem" validate:"required"`
	Description    string `json:"descricao" validate:"required"`
	State          string `json:"estado" validate:"required"`
}

// ToAd converts the request into an [Ad] without id and publish time.
func (r CreateAdRequest) ToAd() Ad {
	return Ad{
		MunicipalityID: r.MunicipalityID,
		UserID:         r.UserID,
		Title:          r.Title,
		Type:           r.Type,
		ImageLink:      r.ImageLink,
		Description:    r.Description,
		State:          r.State,
	}
}

// CreateCommentRequest is the body of POST /comentarios.
type CreateCommentRequest struct {
	UserID int64  `json:"id_user" validate:"required"`
	AdID   int64  `json:"id_anuncio" validate:"required"`
	Body   string `json:"comentario" validate:"required"`
}

// SendMessageRequest is the body of POST /mensagem.
// UserID1 is the sender and UserID2 the recipient.
type SendMessageRequest struct {
	UserID1 int64  `json:"id_user1" validate:"required"`
	UserID2 int64  `json:"id_user2" validate:"required"`
	Body    string `json:"mensagem" validate:"required"`
}
