// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-classifieds/internal/config"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/mock"
	"github.com/MKhiriev/go-classifieds/internal/store"
	"github.com/MKhiriev/go-classifieds/internal/utils"
	"github.com/MKhiriev/go-classifieds/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "classifieds-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockPublisher) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	publisher := mock.NewMockPublisher(ctrl)

	return NewAuthService(users, publisher, testAppConfig(), logger.Nop()), users, publisher
}

func eventOfType(eventType models.EventType) gomock.Matcher {
	return gomock.Cond(func(e models.Event) bool { return e.Type == eventType })
}

// ── RegisterUser ────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, publisher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.PasswordHash)
			assert.NotEqual(t, "s3cret", u.PasswordHash, "password must never be stored in plain text")
			ok, err := utils.VerifyPassword(u.PasswordHash, "s3cret")
			require.NoError(t, err)
			assert.True(t, ok)

			u.ID = 42
			return u, nil
		},
	)
	publisher.EXPECT().Publish(ctx, eventOfType(models.EventUserRegistered)).Return(nil)

	user, err := svc.RegisterUser(ctx, models.User{Name: "Ana", Email: "ana@example.pt"}, "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "ana@example.pt", user.Email)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyRegistered)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "ana@example.pt"}, "s3cret")

	assert.ErrorIs(t, err, store.ErrEmailAlreadyRegistered)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "ana@example.pt"}, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{}, "s3cret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "ana@example.pt"}, string(long))

	assert.ErrorIs(t, err, ErrHashingPassword)
}

func TestAuthService_RegisterUser_PublishFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, publisher := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 1, Email: "ana@example.pt"}, nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	user, err := svc.RegisterUser(context.Background(), models.User{Email: "ana@example.pt"}, "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{ID: 7, Email: "ana@example.pt", PasswordHash: hash}

	tests := []struct {
		name     string
		email    string
		password string
		found    models.User
		findErr  error
		wantErr  error
		wantUser int64
	}{
		{
			name:     "correct credentials",
			email:    "ana@example.pt",
			password: "s3cret",
			found:    stored,
			wantUser: 7,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.pt",
			password: "s3cret",
			findErr:  store.ErrUserNotFound,
			wantErr:  store.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "ana@example.pt",
			password: "wrong",
			found:    stored,
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestAuthSvc(t, ctrl)

			users.EXPECT().FindUserByEmail(gomock.Any(), tt.email).Return(tt.found, tt.findErr)

			user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user.ID)
		})
	}
}

func TestAuthService_Login_PasswordWithExtraBytes(t *testing.T) {
	registered := strings.Repeat("p", utils.MaxPasswordBytes)
	hash, err := utils.HashPassword(registered, bcrypt.MinCost)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.pt").
		Return(models.User{ID: 7, Email: "ana@example.pt", PasswordHash: hash}, nil)

	_, err = svc.Login(context.Background(), "ana@example.pt", registered+"anything")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.pt").
		Return(models.User{ID: 7, PasswordHash: "plain-text-legacy"}, nil)

	_, err := svc.Login(context.Background(), "ana@example.pt", "plain-text-legacy")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), "", "s3cret")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Tokens ──────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 99})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())

	require.NoError(t, err)
	assert.Equal(t, int64(99), parsed.UserID())
}

func TestAuthService_ParseToken_ForeignSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	foreign, err := utils.GenerateJWTToken("classifieds-test", 99, time.Hour, "another-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.String())

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_NoSignKey(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenSignKey = ""
	svc := NewAuthService(nil, nil, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{ID: 1})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
