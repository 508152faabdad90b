// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-classifieds/internal/events"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/store"
	"github.com/MKhiriev/go-classifieds/models"
)

type messageService struct {
	messageRepository store.MessageRepository
	userRepository    store.UserRepository
	publisher         events.Publisher

	logger *logger.Logger
}

func NewMessageService(
	messageRepository store.MessageRepository,
	userRepository store.UserRepository,
	publisher events.Publisher,
	logger *logger.Logger,
) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		userRepository:    userRepository,
		publisher:         publisher,
		logger:            logger,
	}
}

// SendMessage stores a message from msg.UserID1 to msg.UserID2, creating the
// connection between them on first contact.
func (s *messageService) SendMessage(ctx context.Context, msg models.Message) (models.SendMessageResult, error) {
	log := logger.FromContext(ctx)

	if msg.UserID1 == msg.UserID2 {
		log.Error().Int64("id_user1", msg.UserID1).Msg("message addressed to its sender")
		return models.SendMessageResult{}, ErrSelfMessage
	}

	msg.ID = 0
	msg.SenderID = msg.UserID1

	result, err := s.messageRepository.SendMessage(ctx, msg)
	if err != nil {
		log.Err(err).Int64("id_user1", msg.UserID1).Int64("id_user2", msg.UserID2).Msg("sending message failed")
		return models.SendMessageResult{}, fmt.Errorf("sending message failed: %w", err)
	}

	publishEvent(ctx, s.publisher, models.EventMessageSent, result.Message)

	return result, nil
}

// GetConversation lists the messages exchanged by two users in insertion order.
func (s *messageService) GetConversation(ctx context.Context, userID1, userID2 int64) ([]models.Message, error) {
	messages, err := s.messageRepository.ListConversation(ctx, userID1, userID2)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id_user1", userID1).Int64("id_user2", userID2).Msg("listing conversation failed")
		return nil, fmt.Errorf("listing conversation failed: %w", err)
	}

	return messages, nil
}

// GetConnections lists the counterparts of userID with their names. Names are
// resolved in a single query; a counterpart without a user row is named
// [models.UnknownUserName]. ErrNoConnections is returned when the user has
// none.
func (s *messageService) GetConnections(ctx context.Context, userID int64) ([]models.ConnectionEntry, error) {
	log := logger.FromContext(ctx)

	connections, err := s.messageRepository.ListConnections(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id_user", userID).Msg("listing connections failed")
		return nil, fmt.Errorf("listing connections failed: %w", err)
	}
	if len(connections) == 0 {
		return nil, ErrNoConnections
	}

	ids := make([]int64, 0, len(connections))
	for _, c := range connections {
		ids = append(ids, c.Counterpart(userID))
	}

	names, err := s.userRepository.FindUserNames(ctx, ids)
	if err != nil {
		log.Err(err).Int64("id_user", userID).Msg("resolving connection names failed")
		return nil, fmt.Errorf("resolving connection names failed: %w", err)
	}

	entries := make([]models.ConnectionEntry, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			name = models.UnknownUserName
		}
		entries = append(entries, models.ConnectionEntry{UserID: id, Name: name})
	}

	return entries, nil
}
