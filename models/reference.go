// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// District is a static reference row of the Distritos table.
type District struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// Municipality is a static reference row of the Municipio table.
// Every municipality belongs to exactly one district.
type Municipality struct {
	ID         int64  `json:"id"`
	Name       string `json:"nome"`
	DistrictID int64  `json:"id_dist"`
}
