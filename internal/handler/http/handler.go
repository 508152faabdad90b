// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-classifieds/internal/config"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/service"
	"github.com/MKhiriev/go-classifieds/internal/utils"
)

type Handler struct {
	services *service.Services

	traceIDGenerator *utils.TraceIDGenerator
	requestTimeout   time.Duration
	allowedOrigins   []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		traceIDGenerator: utils.NewTraceIDGenerator(),
		requestTimeout:   cfg.RequestTimeout,
		allowedOrigins:   cfg.AllowedOrigins,
		logger:           logger,
	}
}
