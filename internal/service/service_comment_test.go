// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/mock"
	"github.com/MKhiriev/go-classifieds/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentService_CreateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mock.NewMockCommentRepository(ctrl)
	svc := NewCommentService(comments, logger.Nop())

	comments.EXPECT().CreateComment(gomock.Any(), models.Comment{UserID: 1, AdID: 2, Body: "Ainda disponível?"}).
		Return(models.Comment{ID: 8, UserID: 1, AdID: 2, Body: "Ainda disponível?"}, nil)

	created, err := svc.CreateComment(context.Background(), models.Comment{ID: 3, UserID: 1, AdID: 2, Body: "Ainda disponível?"})

	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
}

func TestCommentService_ListComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mock.NewMockCommentRepository(ctrl)
	svc := NewCommentService(comments, logger.Nop())

	want := []models.Comment{{ID: 1, AdID: 2}}
	comments.EXPECT().ListCommentsByAd(gomock.Any(), int64(2)).Return(want, nil)

	got, err := svc.ListComments(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCommentService_ListComments_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	comments := mock.NewMockCommentRepository(ctrl)
	svc := NewCommentService(comments, logger.Nop())

	_, err := svc.ListComments(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	dbErr := errors.New("timeout")
	comments.EXPECT().ListCommentsByAd(gomock.Any(), int64(2)).Return(nil, dbErr)

	_, err = svc.ListComments(context.Background(), 2)
	assert.ErrorIs(t, err, dbErr)
}
