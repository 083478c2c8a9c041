// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-draw/cliparse"
	"github.com/danielhkuo/quickly-draw/draw"
	"github.com/danielhkuo/quickly-draw/middleware"
	"github.com/danielhkuo/quickly-draw/models"
)

type DrawHandler struct {
	engine *draw.Engine
	cfg    cliparse.Config
}

func NewDrawHandler(engine *draw.Engine, cfg cliparse.Config) *DrawHandler {
	return &DrawHandler{engine: engine, cfg: cfg}
}

// CreateDraw handles POST /draws
func (h *DrawHandler) CreateDraw(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	out, err := h.engine.Draw(r.Context(), req.Name)
	if err != nil {
		writeDrawError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		Item:            out.Item,
		AlreadyAssigned: out.AlreadyAssigned,
	})
}

// ListDraws handles GET /draws
func (h *DrawHandler) ListDraws(w http.ResponseWriter, r *http.Request) {
	draws, err := h.engine.ListDraws(r.Context())
	if err != nil {
		slog.Error("failed to list draws", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list draws")
		return
	}

	views := make([]models.DrawView, 0, len(draws))
	for _, d := range draws {
		views = append(views, d.View())
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// writeDrawError maps engine errors to HTTP responses. The engine has
// already logged storage failures with the participant and item.
func writeDrawError(w http.ResponseWriter, err error) {
	var unregistered *draw.UnregisteredOverrideItemError

	switch {
	case errors.Is(err, draw.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
	case errors.As(err, &unregistered):
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf(
			"The item %q has not been registered yet. Ask the admin to add it.", unregistered.Item))
	case errors.Is(err, draw.ErrNoItemsAvailable):
		middleware.ErrorResponse(w, http.StatusBadRequest, "No items registered yet. Ask the admin to add some.")
	case errors.Is(err, draw.ErrPoolExhausted):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Every item has already been drawn. Ask the admin to add more.")
	case errors.Is(err, draw.ErrOverrideConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "The item reserved for this name was already drawn by someone else. Ask the admin to check the overrides.")
	case errors.Is(err, draw.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "The draw conflicted with another request. Please try again.")
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to draw item")
	}
}
