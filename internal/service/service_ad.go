// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-classifieds/internal/events"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/store"
	"github.com/MKhiriev/go-classifieds/models"
)

type adService struct {
	adRepository store.AdRepository
	publisher    events.Publisher

	// now stamps the publish time of new ads.
	now func() time.Time

	logger *logger.Logger
}

func NewAdService(adRepository store.AdRepository, publisher events.Publisher, logger *logger.Logger) AdService {
	return &adService{
		adRepository: adRepository,
		publisher:    publisher,
		now:          time.Now,
		logger:       logger,
	}
}

// CreateAd stores ad with a server-generated publish time. Any PublishedAt
// sent by the client is overwritten.
func (s *adService) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	log := logger.FromContext(ctx)

	ad.ID = 0
	ad.PublishedAt = s.now().UTC()

	created, err := s.adRepository.CreateAd(ctx, ad)
	if err != nil {
		log.Err(err).Int64("id_user", ad.UserID).Int64("id_munic", ad.MunicipalityID).Msg("ad creation failed")
		return models.Ad{}, fmt.Errorf("ad creation failed: %w", err)
	}

	publishEvent(ctx, s.publisher, models.EventAdCreated, created)

	return created, nil
}

// ListAds lists every ad, or the ads of one municipality newest first.
func (s *adService) ListAds(ctx context.Context, filter models.AdFilter) ([]models.Ad, error) {
	ads, err := s.adRepository.ListAds(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing ads failed")
		return nil, fmt.Errorf("listing ads failed: %w", err)
	}

	return ads, nil
}
