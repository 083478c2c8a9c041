// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput             = errors.New("invalid input")
	ErrNotFound                 = errors.New("not found")
	ErrConflict                 = errors.New("conflict")
	ErrNoItemsAvailable         = errors.New("no items available")
	ErrPoolExhausted            = errors.New("item pool exhausted")
	ErrUnregisteredOverrideItem = errors.New("override item not registered")
)

// Ledger write conflicts. Both match ErrConflict.
var (
	ErrPersonTaken      = fmt.Errorf("person already has a draw: %w", ErrConflict)
	ErrItemTaken        = fmt.Errorf("item already drawn: %w", ErrConflict)
	ErrOverrideConflict = fmt.Errorf("override item already drawn by someone else: %w", ErrConflict)
)

// UnregisteredOverrideItemError is returned when an override points at an
// item name that has no catalog entry yet.
type UnregisteredOverrideItemError struct {
	Item string
}

func (e *UnregisteredOverrideItemError) Error() string {
	return fmt.Sprintf("override item %q is not registered", e.Item)
}

func (e *UnregisteredOverrideItemError) Is(target error) bool {
	return target == ErrUnregisteredOverrideItem
}
