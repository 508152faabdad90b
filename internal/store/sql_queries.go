// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-classifieds/models"
)

const (
	createUser = `INSERT INTO Utilizador (nome, tipoUser, email, password, coordenadasMorada, id_dist, id_munic, nif)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id;`

	findUserByEmail = `SELECT id, nome, tipoUser, email, password, coordenadasMorada, id_dist, id_munic, nif
    FROM Utilizador
    WHERE email = $1;`

	findUserByID = `SELECT id, nome, tipoUser, email, password, coordenadasMorada, id_dist, id_munic, nif
    FROM Utilizador
    WHERE id = $1;`

	listDistricts = `SELECT id, nome FROM Distritos ORDER BY id;`

	listMunicipalities = `SELECT id, nome, id_dist FROM Municipio ORDER BY id;`

	createAd = `INSERT INTO anuncios (id_munic, id_user, titulo, data_publicacao, tipo, link_imagem, descricao, estado)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id;`

	createComment = `INSERT INTO comentarios_anuncios (id_user, id_anuncio, comentario)
    VALUES ($1, $2, $3)
    RETURNING id;`

	listCommentsByAd = `SELECT id, id_user, id_anuncio, comentario
    FROM comentarios_anuncios
    WHERE id_anuncio = $1
    ORDER BY id;`

	// matches the pair in both orderings
	findConnection = `SELECT id, id_user1, id_user2
    FROM Conexoes
    WHERE (id_user1 = $1 AND id_user2 = $2) OR (id_user1 = $2 AND id_user2 = $1)
    LIMIT 1;`

	// a concurrent insert of the same pair hits conexoes_pair_key and yields no row
	insertConnection = `INSERT INTO Conexoes (id_user1, id_user2)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING
    RETURNING id, id_user1, id_user2;`

	insertMessage = `INSERT INTO Mensagens (id_user1, id_user2, id_remetente, mensagem)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListAdsQuery(filter models.AdFilter) (string, []any, error) {
	query := psql.
		Select("id", "id_munic", "id_user", "titulo", "data_publicacao", "tipo", "link_imagem", "descricao", "estado").
		From("anuncios")

	if filter.MunicipalityID != nil {
		query = query.
			Where(sq.Eq{"id_munic": *filter.MunicipalityID}).
			OrderBy("data_publicacao DESC", "id DESC")
	} else {
		query = query.OrderBy("id")
	}

	sqlText, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlText, args, nil
}

func buildFindUserNamesQuery(ids []int64) (string, []any, error) {
	sqlText, args, err := psql.
		Select("id", "nome").
		From("Utilizador").
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlText, args, nil
}

func buildListConversationQuery(userID1, userID2 int64) (string, []any, error) {
	sqlText, args, err := psql.
		Select("id", "id_user1", "id_user2", "id_remetente", "mensagem").
		From("Mensagens").
		Where(sq.Or{
			sq.And{sq.Eq{"id_user1": userID1}, sq.Eq{"id_user2": userID2}},
			sq.And{sq.Eq{"id_user1": userID2}, sq.Eq{"id_user2": userID1}},
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlText, args, nil
}

func buildListConnectionsQuery(userID int64) (string, []any, error) {
	sqlText, args, err := psql.
		Select("id", "id_user1", "id_user2").
		From("Conexoes").
		Where(sq.Or{sq.Eq{"id_user1": userID}, sq.Eq{"id_user2": userID}}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlText, args, nil
}
