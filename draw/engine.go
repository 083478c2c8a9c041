// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-draw/models"
	"github.com/google/uuid"
)

// DefaultMaxAttempts bounds the retries after a ledger write conflict.
const DefaultMaxAttempts = 3

// Tx is the transactional view of the catalog and ledger.
type Tx interface {
	// FindDraw returns the draw for a person key, or ErrNotFound.
	FindDraw(ctx context.Context, personKey string) (models.Draw, error)
	// ItemUsage returns every item in creation order with its draw count.
	ItemUsage(ctx context.Context) ([]models.ItemUsage, error)
	// InsertDraw fails with ErrPersonTaken or ErrItemTaken on uniqueness
	// violations. When both would apply, ErrPersonTaken wins.
	InsertDraw(ctx context.Context, d models.Draw) error
	InsertItem(ctx context.Context, item models.Item) error
	// DeleteItem fails with ErrNotFound or, if referenced, ErrConflict.
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context) ([]models.Item, error)
	// ListDraws returns draws newest first.
	ListDraws(ctx context.Context) ([]models.Draw, error)
}

// Repo runs fn in a transaction, committing only if fn returns nil.
type Repo interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

// Notifier receives every newly recorded draw.
type Notifier interface {
	Publish(d models.DrawView)
}

// Outcome is the result of a draw request.
type Outcome struct {
	Item            string
	AlreadyAssigned bool
	Draw            models.Draw
}

// Engine assigns catalog items to participants, once per participant.
type Engine struct {
	repo        Repo
	policy      Policy
	overrides   Overrides
	intn        Intn
	now         func() time.Time
	notifier    Notifier
	maxAttempts int

	// serializes draws and catalog mutations
	mu sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithIntn replaces the crypto/rand source used by policies.
func WithIntn(intn Intn) Option {
	return func(e *Engine) { e.intn = intn }
}

// WithClock sets the clock used for draw and item timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithNotifier publishes every newly recorded draw to n.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithMaxAttempts bounds the attempts per draw. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// NewEngine returns an engine over repo. A nil policy means Balanced.
func NewEngine(repo Repo, policy Policy, overrides Overrides, opts ...Option) *Engine {
	if policy == nil {
		policy = Balanced{}
	}
	if overrides == nil {
		overrides = Overrides{}
	}
	e := &Engine{
		repo:        repo,
		policy:      policy,
		overrides:   overrides,
		intn:        SecureIntn,
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the policy the engine draws with.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Draw returns the item assigned to rawName, assigning one first if the
// participant has none.
func (e *Engine) Draw(ctx context.Context, rawName string) (Outcome, error) {
	name := CleanName(rawName)
	if name == "" {
		return Outcome{}, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	key := NameKey(name)

	e.mu.Lock()
	defer e.mu.Unlock()

	skip := make(map[string]bool)
	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		out, chosen, err := e.attempt(ctx, name, key, skip)
		if err == nil {
			if !out.AlreadyAssigned {
				slog.Info("draw recorded",
					"person", name,
					"item", out.Item,
					"policy", e.policy.Name(),
				)
				if e.notifier != nil {
					e.notifier.Publish(out.Draw.View())
				}
			}
			return out, nil
		}

		switch {
		case errors.Is(err, ErrPersonTaken):
			// someone else recorded this person first; the next attempt
			// returns their draw
		case errors.Is(err, ErrItemTaken):
			skip[chosen.ID] = true
		default:
			if !isDomainError(err) {
				slog.Error("failed to draw item",
					"person", name,
					"item", chosen.Name,
					"policy", e.policy.Name(),
					"attempt", attempt,
					"error", err,
				)
			}
			return Outcome{}, err
		}

		slog.Warn("draw conflict, retrying",
			"person", name,
			"item", chosen.Name,
			"policy", e.policy.Name(),
			"attempt", attempt,
			"error", err,
		)
		lastErr = err
	}

	if errors.Is(lastErr, ErrItemTaken) {
		return Outcome{}, fmt.Errorf("%w after %d attempts", ErrPoolExhausted, e.maxAttempts)
	}
	return Outcome{}, lastErr
}

// attempt runs one transactional read-decide-write pass. chosen is the item
// that was about to be recorded, if any.
func (e *Engine) attempt(ctx context.Context, name, key string, skip map[string]bool) (Outcome, models.Item, error) {
	var out Outcome
	var chosen models.Item

	err := e.repo.InTx(ctx, func(tx Tx) error {
		existing, err := tx.FindDraw(ctx, key)
		if err == nil {
			out = Outcome{Item: existing.ItemName, AlreadyAssigned: true, Draw: existing}
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("failed to look up draw: %w", err)
		}

		usage, err := tx.ItemUsage(ctx)
		if err != nil {
			return fmt.Errorf("failed to load item usage: %w", err)
		}

		forced, isOverride := e.overrides.Resolve(key)
		if isOverride {
			u, ok := findItem(usage, forced)
			if !ok {
				return &UnregisteredOverrideItemError{Item: forced}
			}
			chosen = u.Item
		} else {
			chosen, err = e.policy.Choose(usage, skip, e.intn)
			if err != nil {
				return err
			}
		}

		d, err := e.newDraw(name, key, chosen)
		if err != nil {
			return err
		}
		if err := tx.InsertDraw(ctx, d); err != nil {
			if isOverride && errors.Is(err, ErrItemTaken) {
				return fmt.Errorf("%w: %q", ErrOverrideConflict, chosen.Name)
			}
			return err
		}

		out = Outcome{Item: chosen.Name, Draw: d}
		return nil
	})

	return out, chosen, err
}

func (e *Engine) newDraw(name, key string, item models.Item) (models.Draw, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return models.Draw{}, fmt.Errorf("failed to generate draw ID: %w", err)
	}
	return models.Draw{
		ID:         id.String(),
		PersonName: name,
		PersonKey:  key,
		ItemID:     item.ID,
		ItemName:   item.Name,
		Policy:     e.policy.Name(),
		CreatedAt:  e.now().UTC(),
	}, nil
}

// AddItem registers a new item in the catalog.
func (e *Engine) AddItem(ctx context.Context, rawName string) (models.Item, error) {
	name := CleanName(rawName)
	if name == "" {
		return models.Item{}, fmt.Errorf("item name is required: %w", ErrInvalidInput)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to generate item ID: %w", err)
	}
	item := models.Item{ID: id.String(), Name: name, CreatedAt: e.now().UTC()}

	e.mu.Lock()
	defer e.mu.Unlock()

	err = e.repo.InTx(ctx, func(tx Tx) error {
		return tx.InsertItem(ctx, item)
	})
	if err != nil {
		return models.Item{}, err
	}

	slog.Info("item added", "item_id", item.ID, "name", item.Name)
	return item, nil
}

// RemoveItem deletes an item nobody has drawn.
func (e *Engine) RemoveItem(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.repo.InTx(ctx, func(tx Tx) error {
		return tx.DeleteItem(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("item removed", "item_id", id)
	return nil
}

// ListItems returns the catalog in creation order.
func (e *Engine) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := e.repo.InTx(ctx, func(tx Tx) error {
		var err error
		items, err = tx.ListItems(ctx)
		return err
	})
	return items, err
}

// ListDraws returns the ledger, newest first.
func (e *Engine) ListDraws(ctx context.Context) ([]models.Draw, error) {
	var draws []models.Draw
	err := e.repo.InTx(ctx, func(tx Tx) error {
		var err error
		draws, err = tx.ListDraws(ctx)
		return err
	})
	return draws, err
}

func isDomainError(err error) bool {
	for _, target := range []error{
		ErrInvalidInput,
		ErrNotFound,
		ErrConflict,
		ErrNoItemsAvailable,
		ErrPoolExhausted,
		ErrUnregisteredOverrideItem,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
