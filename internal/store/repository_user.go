// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository]
// over the Utilizador table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with the generated id.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyRegistered]
//   - foreign key violation (unknown district/municipality) → [ErrReferenceNotFound]
//   - anything else → wrapped [ErrExecutingQuery]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.db.QueryRowContext(ctx, createUser,
		user.Name,
		user.UserType,
		user.Email,
		user.PasswordHash,
		user.Coordinates,
		user.DistrictID,
		user.MunicipalityID,
		user.TaxID,
	).Scan(&user.ID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, mapPostgresError(err, ErrExecutingQuery)
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.UserType,
		&user.Email,
		&user.PasswordHash,
		&user.Coordinates,
		&user.DistrictID,
		&user.MunicipalityID,
		&user.TaxID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("user not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error looking up user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserNames resolves the names of ids with a single id = ANY($1) query.
func (r *userRepository) FindUserNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	log := logger.FromContext(ctx)

	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := buildFindUserNamesQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserNames").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserNames").Int("ids_count", len(ids)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUserNames").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserNames").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}
