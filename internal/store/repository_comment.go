// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
)

type commentRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	err := r.db.QueryRowContext(ctx, createComment, comment.UserID, comment.AdID, comment.Body).Scan(&comment.ID)
	if err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Int64("id_anuncio", comment.AdID).
			Msg("error inserting comment")
		return models.Comment{}, mapPostgresError(err, ErrExecutingQuery)
	}

	return comment, nil
}

func (r *commentRepository) ListCommentsByAd(ctx context.Context, adID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCommentsByAd, adID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByAd").Int64("id_anuncio", adID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 16)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.AdID, &c.Body); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListCommentsByAd").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByAd").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}
