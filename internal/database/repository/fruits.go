package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FruitRepo handles the fruit catalog.
type FruitRepo struct {
	db *sql.DB
}

func NewFruitRepo(db *sql.DB) *FruitRepo { return &FruitRepo{db: db} }

const fruitColumns = `id, name, family, genus, fruit_order, calories, carbohydrates, protein, fat, sugar`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *FruitRepo) Upsert(ctx context.Context, f Fruit) error {
	return upsertFruit(ctx, r.db, f)
}

// UpsertTx is Upsert inside tx.
func (r *FruitRepo) UpsertTx(ctx context.Context, tx *sql.Tx, f Fruit) error {
	return upsertFruit(ctx, tx, f)
}

func upsertFruit(ctx context.Context, ex execer, f Fruit) error {
	_, err := ex.ExecContext(ctx, `
	INSERT INTO fruits(`+fruitColumns+`, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 family=excluded.family,
	 genus=excluded.genus,
	 fruit_order=excluded.fruit_order,
	 calories=excluded.calories,
	 carbohydrates=excluded.carbohydrates,
	 protein=excluded.protein,
	 fat=excluded.fat,
	 sugar=excluded.sugar,
	 updated_at=CURRENT_TIMESTAMP;
	`, f.ID, f.Name, f.Family, f.Genus, f.Order,
		f.Nutritions.Calories, f.Nutritions.Carbohydrates, f.Nutritions.Protein, f.Nutritions.Fat, f.Nutritions.Sugar)
	if err != nil {
		return fmt.Errorf("upsert fruit %d: %w", f.ID, err)
	}
	return nil
}

// List returns the whole catalog ordered by id.
func (r *FruitRepo) List(ctx context.Context) ([]Fruit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+fruitColumns+` FROM fruits ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Fruit
	for rows.Next() {
		f, err := scanFruit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FruitRepo) Get(ctx context.Context, id int) (Fruit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+fruitColumns+` FROM fruits WHERE id = ?`, id)
	f, err := scanFruit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Fruit{}, fmt.Errorf("fruit %d: %w", id, ErrNotFound)
	}
	return f, err
}

func (r *FruitRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fruits`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFruit(s scanner) (Fruit, error) {
	var f Fruit
	err := s.Scan(&f.ID, &f.Name, &f.Family, &f.Genus, &f.Order,
		&f.Nutritions.Calories, &f.Nutritions.Carbohydrates, &f.Nutritions.Protein, &f.Nutritions.Fat, &f.Nutritions.Sugar)
	return f, err
}
