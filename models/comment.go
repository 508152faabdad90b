// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Comment is a user's comment on an ad.
type Comment struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"id_user"`
	AdID   int64  `json:"id_anuncio"`
	Body   string `json:"comentario"`
}
