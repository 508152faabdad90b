// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-classifieds/internal/validators"
)

// queryID reads a required positive integer query parameter.
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, validators.MissingField(name)
	}

	return parseID(raw, name)
}

// optionalQueryID is like queryID but returns nil when the parameter is absent.
func optionalQueryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := parseID(raw, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validators.InvalidField(name)
	}
	return id, nil
}
