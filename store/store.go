// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists the item catalog and draw ledger with database/sql.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-draw/db"
	"github.com/danielhkuo/quickly-draw/draw"
	"github.com/danielhkuo/quickly-draw/models"
)

// Store implements draw.Repo.
type Store struct {
	db *sql.DB
}

func New(conn *sql.DB) *Store {
	return &Store{db: conn}
}

// InTx runs fn in a transaction and commits if fn returns nil.
func (s *Store) InTx(ctx context.Context, fn func(tx draw.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&queries{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type queries struct {
	tx *sql.Tx
}

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func (q *queries) FindDraw(ctx context.Context, personKey string) (models.Draw, error) {
	var d models.Draw
	var createdAt int64
	err := q.tx.QueryRowContext(ctx, `
		SELECT d.id, d.person_name, d.person_key, d.item_id, i.name, d.policy, d.created_at
		FROM draw d
		JOIN item i ON d.item_id = i.id
		WHERE d.person_key = $1
	`, personKey).Scan(&d.ID, &d.PersonName, &d.PersonKey, &d.ItemID, &d.ItemName, &d.Policy, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Draw{}, draw.ErrNotFound
	}
	if err != nil {
		return models.Draw{}, err
	}

	d.CreatedAt = fromNanos(createdAt)
	return d, nil
}

func (q *queries) ItemUsage(ctx context.Context) ([]models.ItemUsage, error) {
	rows, err := q.tx.QueryContext(ctx, `
		SELECT i.id, i.name, i.created_at, COUNT(d.id)
		FROM item i
		LEFT JOIN draw d ON i.id = d.item_id
		GROUP BY i.id, i.name, i.created_at
		ORDER BY i.created_at, i.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := []models.ItemUsage{}
	for rows.Next() {
		var u models.ItemUsage
		var createdAt int64
		if err := rows.Scan(&u.Item.ID, &u.Item.Name, &createdAt, &u.Count); err != nil {
			return nil, err
		}
		u.Item.CreatedAt = fromNanos(createdAt)
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

// InsertDraw checks the person key before inserting, since a row that
// collides on both unique indexes is reported by SQLite as an item_id
// violation only.
func (q *queries) InsertDraw(ctx context.Context, d models.Draw) error {
	var taken bool
	err := q.tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM draw WHERE person_key = $1)
	`, d.PersonKey).Scan(&taken)
	if err != nil {
		return err
	}
	if taken {
		return draw.ErrPersonTaken
	}

	_, err = q.tx.ExecContext(ctx, `
		INSERT INTO draw (id, person_name, person_key, item_id, policy, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, d.ID, d.PersonName, d.PersonKey, d.ItemID, d.Policy, toNanos(d.CreatedAt))

	if err == nil {
		return nil
	}

	switch v, detail := db.ClassifyError(err); v {
	case db.UniqueViolation:
		if strings.Contains(detail, "person_key") {
			return draw.ErrPersonTaken
		}
		if strings.Contains(detail, "item") {
			return draw.ErrItemTaken
		}
		return fmt.Errorf("%w: %s", draw.ErrConflict, detail)
	case db.ForeignKeyViolation:
		return fmt.Errorf("item %s no longer exists: %w", d.ItemID, draw.ErrConflict)
	}
	return err
}

func (q *queries) InsertItem(ctx context.Context, item models.Item) error {
	_, err := q.tx.ExecContext(ctx, `
		INSERT INTO item (id, name, created_at)
		VALUES ($1, $2, $3)
	`, item.ID, item.Name, toNanos(item.CreatedAt))
	return err
}

func (q *queries) DeleteItem(ctx context.Context, id string) error {
	var refs int
	err := q.tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM draw WHERE item_id = $1
	`, id).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("item is referenced by %d draw(s): %w", refs, draw.ErrConflict)
	}

	result, err := q.tx.ExecContext(ctx, `DELETE FROM item WHERE id = $1`, id)
	if err != nil {
		if v, _ := db.ClassifyError(err); v == db.ForeignKeyViolation {
			return fmt.Errorf("item is referenced by a draw: %w", draw.ErrConflict)
		}
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return draw.ErrNotFound
	}
	return nil
}

func (q *queries) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := q.tx.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM item
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		var createdAt int64
		if err := rows.Scan(&item.ID, &item.Name, &createdAt); err != nil {
			return nil, err
		}
		item.CreatedAt = fromNanos(createdAt)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (q *queries) ListDraws(ctx context.Context) ([]models.Draw, error) {
	rows, err := q.tx.QueryContext(ctx, `
		SELECT d.id, d.person_name, d.person_key, d.item_id, i.name, d.policy, d.created_at
		FROM draw d
		JOIN item i ON d.item_id = i.id
		ORDER BY d.created_at DESC, d.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	draws := []models.Draw{}
	for rows.Next() {
		var d models.Draw
		var createdAt int64
		if err := rows.Scan(&d.ID, &d.PersonName, &d.PersonKey, &d.ItemID, &d.ItemName, &d.Policy, &createdAt); err != nil {
			return nil, err
		}
		d.CreatedAt = fromNanos(createdAt)
		draws = append(draws, d)
	}
	return draws, rows.Err()
}

var _ draw.Repo = (*Store)(nil)
