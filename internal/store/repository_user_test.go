// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "nome", "tipouser", "email", "password", "coordenadasmorada", "id_dist", "id_munic", "nif"}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func testUser() models.User {
	return models.User{
		Name:           "Ana",
		UserType:       "particular",
		Email:          "ana@example.com",
		PasswordHash:   "$2a$10$hash",
		Coordinates:    "38.72,-9.14",
		DistrictID:     11,
		MunicipalityID: 11,
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectQuery("INSERT INTO Utilizador").
		WithArgs(user.Name, user.UserType, user.Email, user.PasswordHash, user.Coordinates, user.DistrictID, user.MunicipalityID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, user.Email, created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO Utilizador").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, emailUniqueConstraint))

	_, err := repo.CreateUser(context.Background(), testUser())
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestCreateUser_UnknownMunicipality(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO Utilizador").
		WillReturnError(pgConstraintError(pgerrcode.ForeignKeyViolation, "utilizador_id_munic_fkey"))

	_, err := repo.CreateUser(context.Background(), testUser())
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO Utilizador").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), testUser())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	nif := "123456789"

	mock.ExpectQuery("SELECT (.+) FROM Utilizador WHERE email = \\$1").
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(3), "Ana", "particular", "ana@example.com", "$2a$10$hash", "38.72,-9.14", int64(11), int64(11), nif))

	user, err := repo.FindUserByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	require.NotNil(t, user.TaxID)
	assert.Equal(t, nif, *user.TaxID)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Utilizador WHERE email").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_NullTaxID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Utilizador WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(3), "Ana", "particular", "ana@example.com", "hash", "c", int64(1), int64(1), nil))

	user, err := repo.FindUserByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, user.TaxID)
}

func TestFindUserByID_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM Utilizador WHERE id").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserNames(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ids := []int64{2, 5, 9}

	mock.ExpectQuery("SELECT id, nome FROM Utilizador WHERE id = ANY\\(\\$1\\)").
		WithArgs(ids).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).
			AddRow(int64(2), "Bruno").
			AddRow(int64(9), "Carla"))

	names, err := repo.FindUserNames(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{2: "Bruno", 9: "Carla"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserNames_EmptyIDsSkipsQuery(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	names, err := repo.FindUserNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserNames_RowError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, nome FROM Utilizador").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).
			AddRow(int64(2), "Bruno").
			RowError(0, errors.New("broken row")))

	_, err := repo.FindUserNames(context.Background(), []int64{2})
	assert.ErrorIs(t, err, ErrScanningRows)
}
