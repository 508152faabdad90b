// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/utils"
	"github.com/MKhiriev/go-classifieds/internal/validators"
	"github.com/MKhiriev/go-classifieds/models"
)

const (
	statusMessageSent           = "message sent"
	statusConnectionCreatedSent = "connection created and message sent"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := validators.DecodeAndValidate(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid message")
		return
	}

	result, err := h.services.MessageService.SendMessage(r.Context(), models.Message{
		UserID1: req.UserID1,
		UserID2: req.UserID2,
		Body:    req.Body,
	})
	if err != nil {
		writeError(w, r, err, "sending message failed")
		return
	}

	status := statusMessageSent
	if result.NewConnection {
		status = statusConnectionCreatedSent
	}

	_, _ = utils.WriteJSON(w, models.SendMessageResponse{
		Status:        status,
		NewConnection: result.NewConnection,
		Message:       result.Message,
	}, http.StatusCreated)
}

func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	userID1, err := queryID(r, "id_user1")
	if err != nil {
		writeError(w, r, err, "invalid conversation query")
		return
	}
	userID2, err := queryID(r, "id_user2")
	if err != nil {
		writeError(w, r, err, "invalid conversation query")
		return
	}

	messages, err := h.services.MessageService.GetConversation(r.Context(), userID1, userID2)
	if err != nil {
		writeError(w, r, err, "listing conversation failed")
		return
	}

	_, _ = utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) getConnections(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "id_user1")
	if err != nil {
		writeError(w, r, err, "invalid connections query")
		return
	}

	connections, err := h.services.MessageService.GetConnections(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "listing connections failed")
		return
	}

	_, _ = utils.WriteJSON(w, connections, http.StatusOK)
}
