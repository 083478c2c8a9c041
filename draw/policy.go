// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/danielhkuo/quickly-draw/models"
)

// Intn returns a uniform random int in [0, n).
type Intn func(n int) int

// SecureIntn draws from crypto/rand.
func SecureIntn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// Policy chooses the item for a participant that has no draw yet.
type Policy interface {
	Name() string
	// Exclusive reports whether an item may be drawn at most once.
	Exclusive() bool
	// Choose picks an item from usage, ignoring ids in skip.
	Choose(usage []models.ItemUsage, skip map[string]bool, intn Intn) (models.Item, error)
}

// ParsePolicy returns the policy registered under name.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", models.PolicyBalanced:
		return Balanced{}, nil
	case models.PolicyExclusive:
		return Exclusive{}, nil
	}
	return nil, fmt.Errorf("unknown draw policy %q", name)
}

// Balanced picks uniformly among the least-drawn items. Items can be drawn
// by any number of participants.
type Balanced struct{}

func (Balanced) Name() string    { return models.PolicyBalanced }
func (Balanced) Exclusive() bool { return false }

func (Balanced) Choose(usage []models.ItemUsage, skip map[string]bool, intn Intn) (models.Item, error) {
	if len(usage) == 0 {
		return models.Item{}, ErrNoItemsAvailable
	}

	var candidates []models.Item
	minCount := -1
	for _, u := range usage {
		if skip[u.Item.ID] {
			continue
		}
		switch {
		case minCount == -1 || u.Count < minCount:
			minCount = u.Count
			candidates = append(candidates[:0], u.Item)
		case u.Count == minCount:
			candidates = append(candidates, u.Item)
		}
	}
	if len(candidates) == 0 {
		return models.Item{}, ErrNoItemsAvailable
	}

	return candidates[intn(len(candidates))], nil
}

// Exclusive picks uniformly among items nobody has drawn yet.
type Exclusive struct{}

func (Exclusive) Name() string    { return models.PolicyExclusive }
func (Exclusive) Exclusive() bool { return true }

func (Exclusive) Choose(usage []models.ItemUsage, skip map[string]bool, intn Intn) (models.Item, error) {
	if len(usage) == 0 {
		return models.Item{}, ErrNoItemsAvailable
	}

	var unused []models.Item
	for _, u := range usage {
		if u.Count == 0 && !skip[u.Item.ID] {
			unused = append(unused, u.Item)
		}
	}
	if len(unused) == 0 {
		return models.Item{}, ErrPoolExhausted
	}

	return unused[intn(len(unused))], nil
}
