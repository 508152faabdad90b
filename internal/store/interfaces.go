// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-classifieds/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user (with PasswordHash already set) and returns it
	// with the generated id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// FindUserNames resolves the names of ids in one query. Ids without a row
	// are absent from the result.
	FindUserNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

// ReferenceRepository reads the static geographic reference data.
type ReferenceRepository interface {
	ListDistricts(ctx context.Context) ([]models.District, error)
	ListMunicipalities(ctx context.Context) ([]models.Municipality, error)
}

// AdRepository persists classified ads.
type AdRepository interface {
	CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error)
	ListAds(ctx context.Context, filter models.AdFilter) ([]models.Ad, error)
}

// CommentRepository persists comments on ads.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListCommentsByAd(ctx context.Context, adID int64) ([]models.Comment, error)
}

// MessageRepository persists direct messages and the connections between
// the users exchanging them.
type MessageRepository interface {
	// SendMessage stores msg, creating the connection for the pair first when
	// none exists. Both writes happen in one transaction.
	SendMessage(ctx context.Context, msg models.Message) (models.SendMessageResult, error)
	ListConversation(ctx context.Context, userID1, userID2 int64) ([]models.Message, error)
	ListConnections(ctx context.Context, userID int64) ([]models.Connection, error)
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
