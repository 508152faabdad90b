// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adColumns = []string{"id", "id_munic", "id_user", "titulo", "data_publicacao", "tipo", "link_imagem", "descricao", "estado"}

func TestCreateAd_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db, logger.Nop())

	publishedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	ad := models.Ad{
		MunicipalityID: 11,
		UserID:         3,
		Title:          "Bicicleta",
		PublishedAt:    publishedAt,
		Type:           "venda",
		ImageLink:      "https://img.example/1.jpg",
		Description:    "Quase nova",
		State:          "ativo",
	}

	mock.ExpectQuery("INSERT INTO anuncios").
		WithArgs(ad.MunicipalityID, ad.UserID, ad.Title, publishedAt, ad.Type, ad.ImageLink, ad.Description, ad.State).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(40)))

	created, err := repo.CreateAd(context.Background(), ad)
	require.NoError(t, err)
	assert.Equal(t, int64(40), created.ID)
	assert.Equal(t, publishedAt, created.PublishedAt)
}

func TestCreateAd_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO anuncios").
		WillReturnError(pgConstraintError(pgerrcode.ForeignKeyViolation, "anuncios_id_user_fkey"))

	_, err := repo.CreateAd(context.Background(), models.Ad{UserID: 999})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestListAds_FilteredNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db, logger.Nop())

	newer := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM anuncios WHERE id_munic = \\$1 ORDER BY data_publicacao DESC, id DESC").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(adColumns).
			AddRow(int64(2), int64(11), int64(3), "B", newer, "venda", "l", "d", "ativo").
			AddRow(int64(1), int64(11), int64(3), "A", older, "venda", "l", "d", "ativo"))

	munic := int64(11)
	ads, err := repo.ListAds(context.Background(), models.AdFilter{MunicipalityID: &munic})
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, int64(2), ads[0].ID)
	assert.True(t, ads[0].PublishedAt.After(ads[1].PublishedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAds_Unfiltered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM anuncios ORDER BY id$").
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows(adColumns))

	ads, err := repo.ListAds(context.Background(), models.AdFilter{})
	require.NoError(t, err)
	assert.Empty(t, ads)
	assert.NoError(t, mock.ExpectationsWereMet())
}
