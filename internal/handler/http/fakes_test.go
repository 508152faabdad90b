// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-classifieds/internal/config"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/service"
	"github.com/MKhiriev/go-classifieds/models"
)

// ---- Fake: AuthService ----

type fakeAuthService struct {
	registerFn    func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return f.registerFn(ctx, user, password)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{Claims: models.Claims{UserID: user.ID}, SignedString: "signed-token"}, nil
	}
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

// ---- Fake: UserService ----

type fakeUserService struct {
	getUserFn func(ctx context.Context, userID int64) (models.User, error)
}

func (f *fakeUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return f.getUserFn(ctx, userID)
}

// ---- Fake: ReferenceService ----

type fakeReferenceService struct {
	districts      []models.District
	municipalities []models.Municipality
	err            error
}

func (f *fakeReferenceService) ListDistricts(context.Context) ([]models.District, error) {
	return f.districts, f.err
}

func (f *fakeReferenceService) ListMunicipalities(context.Context) ([]models.Municipality, error) {
	return f.municipalities, f.err
}

// ---- Fake: AdService ----

type fakeAdService struct {
	createFn func(ctx context.Context, ad models.Ad) (models.Ad, error)
	listFn   func(ctx context.Context, filter models.AdFilter) ([]models.Ad, error)
}

func (f *fakeAdService) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	return f.createFn(ctx, ad)
}

func (f *fakeAdService) ListAds(ctx context.Context, filter models.AdFilter) ([]models.Ad, error) {
	return f.listFn(ctx, filter)
}

// ---- Fake: CommentService ----

type fakeCommentService struct {
	createFn func(ctx context.Context, comment models.Comment) (models.Comment, error)
	listFn   func(ctx context.Context, adID int64) ([]models.Comment, error)
}

func (f *fakeCommentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	return f.createFn(ctx, comment)
}

func (f *fakeCommentService) ListComments(ctx context.Context, adID int64) ([]models.Comment, error) {
	return f.listFn(ctx, adID)
}

// ---- Fake: MessageService ----

type fakeMessageService struct {
	sendFn         func(ctx context.Context, msg models.Message) (models.SendMessageResult, error)
	conversationFn func(ctx context.Context, userID1, userID2 int64) ([]models.Message, error)
	connectionsFn  func(ctx context.Context, userID int64) ([]models.ConnectionEntry, error)
}

func (f *fakeMessageService) SendMessage(ctx context.Context, msg models.Message) (models.SendMessageResult, error) {
	return f.sendFn(ctx, msg)
}

func (f *fakeMessageService) GetConversation(ctx context.Context, userID1, userID2 int64) ([]models.Message, error) {
	return f.conversationFn(ctx, userID1, userID2)
}

func (f *fakeMessageService) GetConnections(ctx context.Context, userID int64) ([]models.ConnectionEntry, error) {
	return f.connectionsFn(ctx, userID)
}

// ---- Fake: AppInfoService ----

type fakeAppInfoService struct {
	info models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppInfo(context.Context) models.AppBuildInfo {
	return f.info
}

// ---- Helpers ----

func testServerConfig() config.Server {
	return config.Server{
		RequestTimeout: 5 * time.Second,
		AllowedOrigins: []string{"*"},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, testServerConfig(), logger.Nop())
}
