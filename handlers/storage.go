// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-pick-web/middleware"
	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/storage"
)

const maxKeyLen = 128

type StorageHandler struct {
	backend storage.Backend
}

func NewStorageHandler(backend storage.Backend) *StorageHandler {
	return &StorageHandler{backend: backend}
}

// Get handles GET /api/storage/{key}
func (h *StorageHandler) Get(w http.ResponseWriter, r *http.Request) {
	store, key, ok := h.resolve(w, r)
	if !ok {
		return
	}

	value, found, err := store.Get(r.Context(), key)
	if err != nil {
		slog.Error("failed to read client storage", "key", key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Key not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ValueResponse{Key: key, Value: value})
}

// Put handles PUT /api/storage/{key}
func (h *StorageHandler) Put(w http.ResponseWriter, r *http.Request) {
	store, key, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req models.SetValueRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := store.Set(r.Context(), key, req.Value); err != nil {
		slog.Error("failed to write client storage", "key", key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ValueResponse{Key: key, Value: req.Value})
}

// Delete handles DELETE /api/storage/{key}
func (h *StorageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	store, key, ok := h.resolve(w, r)
	if !ok {
		return
	}

	if err := store.Remove(r.Context(), key); err != nil {
		slog.Error("failed to remove client storage key", "key", key, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *StorageHandler) resolve(w http.ResponseWriter, r *http.Request) (storage.Store, string, bool) {
	key := r.PathValue("key")
	if key == "" || len(key) > maxKeyLen {
		middleware.ErrorResponse(w, http.StatusBadRequest, "key must be 1-128 characters")
		return nil, "", false
	}

	clientID := middleware.ClientID(r.Context())
	if clientID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "client id cookie required")
		return nil, "", false
	}

	return h.backend.Store(clientID), key, true
}
