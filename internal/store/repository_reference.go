// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
)

type referenceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewReferenceRepository constructs a [ReferenceRepository] reading the
// Distritos and Municipio tables.
func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating reference repository")
	return &referenceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *referenceRepository) ListDistricts(ctx context.Context) ([]models.District, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDistricts)
	if err != nil {
		log.Err(err).Str("func", "*referenceRepository.ListDistricts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	districts := make([]models.District, 0, 20)
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			log.Err(err).Str("func", "*referenceRepository.ListDistricts").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*referenceRepository.ListDistricts").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return districts, nil
}

func (r *referenceRepository) ListMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMunicipalities)
	if err != nil {
		log.Err(err).Str("func", "*referenceRepository.ListMunicipalities").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	municipalities := make([]models.Municipality, 0, 64)
	for rows.Next() {
		var m models.Municipality
		if err := rows.Scan(&m.ID, &m.Name, &m.DistrictID); err != nil {
			log.Err(err).Str("func", "*referenceRepository.ListMunicipalities").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		municipalities = append(municipalities, m)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*referenceRepository.ListMunicipalities").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return municipalities, nil
}
