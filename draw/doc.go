// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draw implements the prize draw: the item catalog, the draw ledger
rules, participant overrides and the allocation policies.

# Drawing

Each participant gets exactly one item. Drawing again returns the same item:

	engine := draw.NewEngine(repo, draw.Exclusive{}, draw.DefaultOverrides())
	out, err := engine.Draw(ctx, "Alice ")
	// out.Item == "Panettone", out.AlreadyAssigned == false
	out, err = engine.Draw(ctx, "alice")
	// out.Item == "Panettone", out.AlreadyAssigned == true

Names are compared by NameKey (trimmed, Unicode case-folded) but stored
with their original casing.

# Policies

  - Balanced: picks uniformly among the least-drawn items; items are reused
    once every item has been drawn the same number of times.
  - Exclusive: picks uniformly among items nobody has drawn; fails with
    ErrPoolExhausted once every item is taken.

Select one at startup with ParsePolicy.

# Overrides

Overrides force an item for specific participants and are checked before
the policy. The target item is matched case-insensitively against the
catalog; if it is missing the draw fails with UnregisteredOverrideItemError.

# Concurrency

Draw, AddItem and RemoveItem run under one mutex, and each draw attempt is a
single Repo transaction. Storage uniqueness violations (ErrPersonTaken,
ErrItemTaken) are retried up to DefaultMaxAttempts times.

# Errors

	ErrInvalidInput             empty name
	ErrNotFound                 unknown item id
	ErrConflict                 uniqueness or reference violation
	ErrNoItemsAvailable         empty catalog
	ErrPoolExhausted            every item taken (Exclusive)
	ErrUnregisteredOverrideItem override target not in catalog
*/
package draw
