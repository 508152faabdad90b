// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/store"
	"github.com/MKhiriev/go-classifieds/models"
)

type referenceService struct {
	referenceRepository store.ReferenceRepository

	logger *logger.Logger
}

func NewReferenceService(referenceRepository store.ReferenceRepository, logger *logger.Logger) ReferenceService {
	return &referenceService{
		referenceRepository: referenceRepository,
		logger:              logger,
	}
}

func (s *referenceService) ListDistricts(ctx context.Context) ([]models.District, error) {
	districts, err := s.referenceRepository.ListDistricts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing districts failed")
		return nil, fmt.Errorf("listing districts failed: %w", err)
	}

	return districts, nil
}

func (s *referenceService) ListMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	municipalities, err := s.referenceRepository.ListMunicipalities(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing municipalities failed")
		return nil, fmt.Errorf("listing municipalities failed: %w", err)
	}

	return municipalities, nil
}
