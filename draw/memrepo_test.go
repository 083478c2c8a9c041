// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"context"
	"sort"
	"sync"

	"github.com/danielhkuo/quickly-draw/models"
)

// memRepo is an in-memory Repo. Transactions work on a copy that replaces
// the committed state only when fn succeeds.
type memRepo struct {
	mu        sync.Mutex
	exclusive bool
	items     []models.Item
	draws     []models.Draw

	// insertHook runs before every InsertDraw and may fail it
	insertHook func(d models.Draw) error
	inserts    int
}

type memTx struct {
	repo  *memRepo
	items []models.Item
	draws []models.Draw
}

func newMemRepo(exclusive bool) *memRepo {
	return &memRepo{exclusive: exclusive}
}

func (r *memRepo) InTx(ctx context.Context, fn func(tx Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &memTx{
		repo:  r,
		items: append([]models.Item(nil), r.items...),
		draws: append([]models.Draw(nil), r.draws...),
	}
	if err := fn(tx); err != nil {
		return err
	}
	r.items, r.draws = tx.items, tx.draws
	return nil
}

func (r *memRepo) drawCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.draws)
}

func (tx *memTx) FindDraw(ctx context.Context, personKey string) (models.Draw, error) {
	for _, d := range tx.draws {
		if d.PersonKey == personKey {
			return d, nil
		}
	}
	return models.Draw{}, ErrNotFound
}

func (tx *memTx) ItemUsage(ctx context.Context) ([]models.ItemUsage, error) {
	usage := make([]models.ItemUsage, 0, len(tx.items))
	for _, item := range tx.items {
		u := models.ItemUsage{Item: item}
		for _, d := range tx.draws {
			if d.ItemID == item.ID {
				u.Count++
			}
		}
		usage = append(usage, u)
	}
	return usage, nil
}

func (tx *memTx) InsertDraw(ctx context.Context, d models.Draw) error {
	tx.repo.inserts++
	if tx.repo.insertHook != nil {
		if err := tx.repo.insertHook(d); err != nil {
			return err
		}
	}

	found := false
	for _, item := range tx.items {
		if item.ID == d.ItemID {
			found = true
		}
	}
	if !found {
		return ErrConflict
	}
	for _, existing := range tx.draws {
		if existing.PersonKey == d.PersonKey {
			return ErrPersonTaken
		}
	}
	for _, existing := range tx.draws {
		if tx.repo.exclusive && existing.ItemID == d.ItemID {
			return ErrItemTaken
		}
	}
	tx.draws = append(tx.draws, d)
	return nil
}

func (tx *memTx) InsertItem(ctx context.Context, item models.Item) error {
	tx.items = append(tx.items, item)
	return nil
}

func (tx *memTx) DeleteItem(ctx context.Context, id string) error {
	for _, d := range tx.draws {
		if d.ItemID == id {
			return ErrConflict
		}
	}
	for i, item := range tx.items {
		if item.ID == id {
			tx.items = append(tx.items[:i], tx.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (tx *memTx) ListItems(ctx context.Context) ([]models.Item, error) {
	return append([]models.Item{}, tx.items...), nil
}

func (tx *memTx) ListDraws(ctx context.Context) ([]models.Draw, error) {
	out := append([]models.Draw{}, tx.draws...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
