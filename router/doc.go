// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Draw API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(engine, hub, cfg)

# Endpoints

Health:

	GET /health

Admin login:

	POST /login - Exchange username/password for a bearer token

Draws (public):

	POST /draws      - Draw an item for a name
	GET  /draws      - All draws, newest first
	GET  /draws/live - Websocket stream of new draws

Catalog:

	GET    /items      - List items (public)
	POST   /items      - Add item (admin)
	DELETE /items/{id} - Remove an undrawn item (admin)

Root:

	GET / - STATIC_DIR contents when configured, otherwise a banner
*/
package router
