// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-classifieds/internal/config"
	"github.com/MKhiriev/go-classifieds/internal/events"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/store"
	"github.com/MKhiriev/go-classifieds/models"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	ReferenceService ReferenceService
	AdService        AdService
	CommentService   CommentService
	MessageService   MessageService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, publisher events.Publisher, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, publisher, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, logger),
		ReferenceService: NewReferenceService(storages.ReferenceRepository, logger),
		AdService:        NewAdService(storages.AdRepository, publisher, logger),
		CommentService:   NewCommentService(storages.CommentRepository, logger),
		MessageService:   NewMessageService(storages.MessageRepository, storages.UserRepository, publisher, logger),
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}
}

// publishEvent emits a domain event. Delivery problems are logged and never
// returned to the caller: the write they describe has already succeeded.
func publishEvent(ctx context.Context, publisher events.Publisher, eventType models.EventType, payload any) {
	if err := publisher.Publish(ctx, models.NewEvent(eventType, payload)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("event", string(eventType)).Msg("domain event was not published")
	}
}
