// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-classifieds/internal/logger"
)

// Storages aggregates every repository used by the service layer.
type Storages struct {
	UserRepository      UserRepository
	ReferenceRepository ReferenceRepository
	AdRepository        AdRepository
	CommentRepository   CommentRepository
	MessageRepository   MessageRepository
}

// StoragesOption customizes [NewStorages].
type StoragesOption func(s *Storages, log *logger.Logger)

// WithReferenceCache puts a Redis read-through cache in front of the
// reference repository.
func WithReferenceCache(cache CacheClient, ttl time.Duration) StoragesOption {
	return func(s *Storages, log *logger.Logger) {
		s.ReferenceRepository = NewCachedReferenceRepository(s.ReferenceRepository, cache, ttl, log)
	}
}

// NewStorages builds the Postgres repositories over db.
func NewStorages(db *DB, log *logger.Logger, opts ...StoragesOption) *Storages {
	s := &Storages{
		UserRepository:      NewUserRepository(db, log),
		ReferenceRepository: NewReferenceRepository(db, log),
		AdRepository:        NewAdRepository(db, log),
		CommentRepository:   NewCommentRepository(db, log),
		MessageRepository:   NewMessageRepository(db, log),
	}

	for _, opt := range opts {
		opt(s, log)
	}

	return s
}
