// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
)

type adRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAdRepository(db *DB, logger *logger.Logger) AdRepository {
	logger.Debug().Msg("creating ad repository")
	return &adRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAd inserts ad as given, PublishedAt included, and returns it with
// the generated id. An unknown municipality or author yields
// [ErrReferenceNotFound].
func (r *adRepository) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	log := logger.FromContext(ctx)

	err := r.db.QueryRowContext(ctx, createAd,
		ad.MunicipalityID,
		ad.UserID,
		ad.Title,
		ad.PublishedAt,
		ad.Type,
		ad.ImageLink,
		ad.Description,
		ad.State,
	).Scan(&ad.ID)
	if err != nil {
		log.Err(err).
			Str("func", "*adRepository.CreateAd").
			Int64("id_munic", ad.MunicipalityID).
			Int64("id_user", ad.UserID).
			Msg("error inserting ad")
		return models.Ad{}, mapPostgresError(err, ErrExecutingQuery)
	}

	return ad, nil
}

// ListAds returns the ads of one municipality newest first, or every ad by
// id when the filter is empty.
func (r *adRepository) ListAds(ctx context.Context, filter models.AdFilter) ([]models.Ad, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAdsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*adRepository.ListAds").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adRepository.ListAds").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ads := make([]models.Ad, 0, 50)
	for rows.Next() {
		var ad models.Ad
		scanErr := rows.Scan(
			&ad.ID,
			&ad.MunicipalityID,
			&ad.UserID,
			&ad.Title,
			&ad.PublishedAt,
			&ad.Type,
			&ad.ImageLink,
			&ad.Description,
			&ad.State,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*adRepository.ListAds").Msg("failed to scan ad row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*adRepository.ListAds").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ads, nil
}
