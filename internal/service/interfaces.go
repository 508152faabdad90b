// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-classifieds/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type ReferenceService interface {
	ListDistricts(ctx context.Context) ([]models.District, error)
	ListMunicipalities(ctx context.Context) ([]models.Municipality, error)
}

type AdService interface {
	CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error)
	ListAds(ctx context.Context, filter models.AdFilter) ([]models.Ad, error)
}

type CommentService interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, adID int64) ([]models.Comment, error)
}

// MessageService handles direct messages and the connections they create.
type MessageService interface {
	SendMessage(ctx context.Context, msg models.Message) (models.SendMessageResult, error)
	GetConversation(ctx context.Context, userID1, userID2 int64) ([]models.Message, error)
	GetConnections(ctx context.Context, userID int64) ([]models.ConnectionEntry, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
