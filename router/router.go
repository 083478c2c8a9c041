// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-draw/cliparse"
	"github.com/danielhkuo/quickly-draw/draw"
	"github.com/danielhkuo/quickly-draw/feed"
	"github.com/danielhkuo/quickly-draw/handlers"
	"github.com/danielhkuo/quickly-draw/middleware"
)

func NewRouter(engine *draw.Engine, hub *feed.Hub, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	drawHandler := handlers.NewDrawHandler(engine, cfg)
	itemHandler := handlers.NewItemHandler(engine, cfg)
	authHandler := handlers.NewAuthHandler(cfg)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.AdminTokenSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin login
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Draws (public)
	mux.HandleFunc("POST /draws", middleware.WithLogging(drawHandler.CreateDraw))
	mux.HandleFunc("GET /draws", middleware.WithLogging(drawHandler.ListDraws))
	// Not wrapped: the websocket upgrade needs the raw ResponseWriter
	mux.HandleFunc("GET /draws/live", hub.ServeWS)

	// Catalog (public read, admin write)
	mux.HandleFunc("GET /items", middleware.WithLogging(itemHandler.ListItems))
	mux.HandleFunc("POST /items", admin(itemHandler.CreateItem))
	mux.HandleFunc("DELETE /items/{id}", admin(itemHandler.DeleteItem))

	// Root endpoint
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("quickly-draw API v1"))
		})
	}

	return mux
}
