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

type commentService struct {
	commentRepository store.CommentRepository

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

func (s *commentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.ID = 0

	created, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("id_user", comment.UserID).
			Int64("id_anuncio", comment.AdID).
			Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return created, nil
}

func (s *commentService) ListComments(ctx context.Context, adID int64) ([]models.Comment, error) {
	if adID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	comments, err := s.commentRepository.ListCommentsByAd(ctx, adID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id_anuncio", adID).Msg("listing comments failed")
		return nil, fmt.Errorf("listing comments failed: %w", err)
	}

	return comments, nil
}
