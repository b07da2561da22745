package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FavoriteRepo handles favorited fruits.
type FavoriteRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewFavoriteRepo stamps created_at with now; nil means time.Now in UTC.
func NewFavoriteRepo(db *sql.DB, now func() time.Time) *FavoriteRepo {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &FavoriteRepo{db: db, now: now}
}

// Add marks a fruit as favorite. Adding an existing favorite is a no-op.
func (r *FavoriteRepo) Add(ctx context.Context, fruitID int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO favorites(id, fruit_id, created_at) VALUES (?, ?, ?)
	ON CONFLICT(fruit_id) DO NOTHING;
	`, uuid.NewString(), fruitID, r.now())
	if err != nil {
		return fmt.Errorf("add favorite %d: %w", fruitID, err)
	}
	return nil
}

func (r *FavoriteRepo) Remove(ctx context.Context, fruitID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE fruit_id = ?`, fruitID)
	if err != nil {
		return fmt.Errorf("remove favorite %d: %w", fruitID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("favorite %d: %w", fruitID, ErrNotFound)
	}
	return nil
}

// ListFruitIDs returns favorited fruit ids in the order they were added.
func (r *FavoriteRepo) ListFruitIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT fruit_id FROM favorites ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *FavoriteRepo) List(ctx context.Context) ([]Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, fruit_id, created_at FROM favorites ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.FruitID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Clear removes every favorite inside tx.
func (r *FavoriteRepo) Clear(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM favorites`)
	return err
}
