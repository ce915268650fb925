// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/notify"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// maxBodySize bounds push and pull bodies.
const maxBodySize = 8 << 20

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.push").Msg(app.MsgNoUserIDProvided)
		utils.WriteError(w, http.StatusUnauthorized, service.CodeUnauthorized, app.MsgNoUserIDProvided)
		return
	}

	var request models.PushRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg(app.MsgInvalidDataProvided)
		utils.WriteError(w, http.StatusBadRequest, service.CodeBadRequest, app.MsgInvalidDataProvided)
		return
	}

	response, err := h.services.SyncService.Push(ctx, userID, request)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.push", err)
		return
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("error writing response")
	}
}

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pull").Msg(app.MsgNoUserIDProvided)
		utils.WriteError(w, http.StatusUnauthorized, service.CodeUnauthorized, app.MsgNoUserIDProvided)
		return
	}

	var request models.PullRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg(app.MsgInvalidDataProvided)
		utils.WriteError(w, http.StatusBadRequest, service.CodeBadRequest, app.MsgInvalidDataProvided)
		return
	}

	response, err := h.services.SyncService.Pull(ctx, userID, request)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.pull", err)
		return
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error writing response")
	}
}

// poke upgrades the request to the websocket the client listens on for
// wake-ups. It returns when the client disconnects.
func (h *Handler) poke(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.poke").Msg(app.MsgNoUserIDProvided)
		utils.WriteError(w, http.StatusUnauthorized, service.CodeUnauthorized, app.MsgNoUserIDProvided)
		return
	}

	err := h.notifier.Subscribe(w, r, userID)
	switch {
	case err == nil:
	case errors.Is(err, notify.ErrDisabled):
		utils.WriteError(w, http.StatusNotFound, service.CodeNotFound, err.Error())
	case errors.Is(err, notify.ErrUpgrading):
		// the upgrader has already answered the client
		log.Err(err).Str("func", "*Handler.poke").Msg("websocket handshake failed")
	default:
		log.Err(err).Str("func", "*Handler.poke").Msg("error subscribing client")
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	code := service.ErrorCode(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("internal error")
	} else {
		log.Warn().Err(err).Str("func", funcName).Str("code", code).Msg("request failed")
	}

	utils.WriteError(w, status, code, service.ErrorMessage(err))
}
