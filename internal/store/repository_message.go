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

// ErrConnectionVanished is returned when the pair's connection could neither
// be inserted nor found afterwards.
var ErrConnectionVanished = errors.New("connection could not be created or found")

type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// SendMessage stores msg inside one transaction:
//  1. look up the connection for the pair in both orderings;
//  2. if absent, insert it (a concurrent insert of the same pair is absorbed
//     by the unique pair index and the row is read back);
//  3. insert the message with the participant ordering of the connection.
//
// msg.UserID1 and msg.UserID2 identify the pair; msg.SenderID is stored as is.
func (r *messageRepository) SendMessage(ctx context.Context, msg models.Message) (models.SendMessageResult, error) {
	log := logger.FromContext(ctx)

	var result models.SendMessageResult
	err := r.db.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		result = models.SendMessageResult{}

		conn, found, err := r.findConnection(ctx, tx, msg.UserID1, msg.UserID2)
		if err != nil {
			return err
		}

		if !found {
			conn, found, err = r.insertConnection(ctx, tx, msg.UserID1, msg.UserID2)
			if err != nil {
				return err
			}
			result.NewConnection = found

			if !found {
				conn, found, err = r.findConnection(ctx, tx, msg.UserID1, msg.UserID2)
				if err != nil {
					return err
				}
				if !found {
					return ErrConnectionVanished
				}
			}
		}

		stored := models.Message{
			UserID1:  conn.UserID1,
			UserID2:  conn.UserID2,
			SenderID: msg.SenderID,
			Body:     msg.Body,
		}
		if err := tx.QueryRowContext(ctx, insertMessage,
			stored.UserID1, stored.UserID2, stored.SenderID, stored.Body,
		).Scan(&stored.ID); err != nil {
			log.Err(err).Str("func", "*messageRepository.SendMessage").Msg("error inserting message")
			return mapPostgresError(err, ErrExecutingQuery)
		}

		result.Message = stored
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.SendMessage").
			Int64("id_user1", msg.UserID1).
			Int64("id_user2", msg.UserID2).
			Msg("failed to send message")
		return models.SendMessageResult{}, err
	}

	return result, nil
}

func (r *messageRepository) findConnection(ctx context.Context, tx *sql.Tx, userID1, userID2 int64) (models.Connection, bool, error) {
	var conn models.Connection
	err := tx.QueryRowContext(ctx, findConnection, userID1, userID2).Scan(&conn.ID, &conn.UserID1, &conn.UserID2)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Connection{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.findConnection").Msg("error looking up connection")
		return models.Connection{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return conn, true, nil
}

func (r *messageRepository) insertConnection(ctx context.Context, tx *sql.Tx, userID1, userID2 int64) (models.Connection, bool, error) {
	var conn models.Connection
	err := tx.QueryRowContext(ctx, insertConnection, userID1, userID2).Scan(&conn.ID, &conn.UserID1, &conn.UserID2)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Connection{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.insertConnection").Msg("error inserting connection")
		return models.Connection{}, false, mapPostgresError(err, ErrExecutingQuery)
	}

	return conn, true, nil
}

// ListConversation returns the messages between the two users in insertion
// order, whichever ordering they were stored with.
func (r *messageRepository) ListConversation(ctx context.Context, userID1, userID2 int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListConversationQuery(userID1, userID2)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListConversation").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListConversation").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 32)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.UserID1, &m.UserID2, &m.SenderID, &m.Body); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListConversation").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.ListConversation").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// ListConnections returns every connection in which userID takes part.
func (r *messageRepository) ListConnections(ctx context.Context, userID int64) ([]models.Connection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListConnectionsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListConnections").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListConnections").Int64("id_user", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	connections := make([]models.Connection, 0, 16)
	for rows.Next() {
		var c models.Connection
		if err := rows.Scan(&c.ID, &c.UserID1, &c.UserID2); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListConnections").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		connections = append(connections, c)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.ListConnections").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return connections, nil
}
