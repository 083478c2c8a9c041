// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateDrawRequest: name
  - CreateItemRequest: name
  - LoginRequest: username, password

# Response Types

Types for JSON responses:

  - DrawResponse: item, alreadyAssigned
  - DeleteItemResponse: success
  - LoginResponse: token, expiresAt
  - ErrorResponse: error, message

# Domain Types

  - Item: a prize in the catalog
  - ItemUsage: an item with its draw count
  - Draw: one participant bound to one item
  - DrawView: public projection of a Draw (listings and live feed)

# Constants

Allocation policies:

	PolicyBalanced  = "balanced"
	PolicyExclusive = "exclusive"
*/
package models
