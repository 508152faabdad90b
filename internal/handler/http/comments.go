// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-classifieds/internal/utils"
	"github.com/MKhiriev/go-classifieds/internal/validators"
	"github.com/MKhiriev/go-classifieds/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCommentRequest
	if err := validators.DecodeAndValidate(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid comment")
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), models.Comment{
		UserID: req.UserID,
		AdID:   req.AdID,
		Body:   req.Body,
	})
	if err != nil {
		writeError(w, r, err, "comment creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	adID, err := queryID(r, "id_anuncio")
	if err != nil {
		writeError(w, r, err, "invalid ad id")
		return
	}

	comments, err := h.services.CommentService.ListComments(r.Context(), adID)
	if err != nil {
		writeError(w, r, err, "listing comments failed")
		return
	}

	_, _ = utils.WriteJSON(w, comments, http.StatusOK)
}
