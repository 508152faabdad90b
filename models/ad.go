// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Ad is a classified ad ("anuncio") published by a user in a municipality.
type Ad struct {
	ID             int64     `json:"id"`
	MunicipalityID int64     `json:"id_munic"`
	UserID         int64     `json:"id_user"`
	Title          string    `json:"titulo"`
	PublishedAt    time.Time `json:"data_publicacao"`
	Type           string    `json:"tipo"`
	ImageLink      string    `json:"link_imagem"`
	Description    string    `json:"descricao"`
	State          string    `json:"estado"`
}

// AdFilter narrows an ad listing. A nil MunicipalityID lists every ad.
type AdFilter struct {
	MunicipalityID *int64
}
