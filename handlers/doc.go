// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Draw API.

# Handler Types

Each handler is a struct with engine and config dependencies:

  - DrawHandler: drawing and the public draw list
  - ItemHandler: the item catalog
  - AuthHandler: admin login

Handlers are created via constructor functions:

	drawHandler := handlers.NewDrawHandler(engine, cfg)

# Drawing

	POST /draws {"name": "Alice"} → {"item": "Panettone", "alreadyAssigned": false}
	GET  /draws                   → [{"personName", "itemName", "createdAt"}], newest first

Drawing twice with the same name (ignoring case and surrounding spaces)
returns the first item with alreadyAssigned set.

# Catalog

	GET    /items      → [{"id", "name"}] in creation order
	POST   /items      → create (admin)
	DELETE /items/{id} → delete an item nobody has drawn (admin)

Admin operations require the Authorization: Bearer header from POST /login.

# Status Codes

	400  empty name, no items, pool exhausted, override item not registered
	401  missing or invalid admin token
	404  unknown item id
	409  ledger conflict, or deleting an item that was drawn
	500  storage failure
*/
package handlers
