// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-draw/cliparse"
	"github.com/danielhkuo/quickly-draw/draw"
	"github.com/danielhkuo/quickly-draw/middleware"
	"github.com/danielhkuo/quickly-draw/models"
)

type ItemHandler struct {
	engine *draw.Engine
	cfg    cliparse.Config
}

func NewItemHandler(engine *draw.Engine, cfg cliparse.Config) *ItemHandler {
	return &ItemHandler{engine: engine, cfg: cfg}
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.engine.ListItems(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list items")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, items)
}

// CreateItem handles POST /items (admin)
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.engine.AddItem(r.Context(), req.Name)
	if errors.Is(err, draw.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if err != nil {
		slog.Error("failed to create item", "name", req.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// DeleteItem handles DELETE /items/{id} (admin)
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item id is required")
		return
	}

	err := h.engine.RemoveItem(r.Context(), itemID)
	switch {
	case err == nil:
		middleware.JSONResponse(w, http.StatusOK, models.DeleteItemResponse{Success: true})
	case errors.Is(err, draw.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, draw.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "Item has already been drawn and cannot be deleted")
	default:
		slog.Error("failed to delete item", "item_id", itemID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
	}
}
