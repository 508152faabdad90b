// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"

	"github.com/MKhiriev/go-classifieds/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/events_mock.go -package=mock

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
	Close() error
}
