// Package catalog reads and writes fruit catalogs in the Fruityvice JSON
// layout (an array of fruits with a nested "nutritions" object).
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jask/fruitlist/internal/database"
	"github.com/jask/fruitlist/internal/database/repository"
)

// ErrInvalid marks a catalog entry that cannot be stored.
var ErrInvalid = errors.New("invalid catalog entry")

// Upserter stores fruits inside a transaction.
type Upserter interface {
	UpsertTx(ctx context.Context, tx *sql.Tx, f repository.Fruit) error
}

// Load parses the catalog at path and validates every entry.
func Load(path string) ([]repository.Fruit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var fruits []repository.Fruit
	if err := json.Unmarshal(data, &fruits); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", filepath.Base(path), err)
	}
	if err := validate(fruits); err != nil {
		return nil, err
	}
	return fruits, nil
}

// Import loads the catalog at path into repo in a single transaction and
// returns how many fruits were written. Nothing is written when any entry is
// invalid or any upsert fails.
func Import(ctx context.Context, db *sql.DB, repo Upserter, path string) (int, error) {
	fruits, err := Load(path)
	if err != nil {
		return 0, err
	}
	if err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, f := range fruits {
			if err := repo.UpsertTx(ctx, tx, f); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return 0, fmt.Errorf("store catalog: %w", err)
	}
	return len(fruits), nil
}

// Save writes fruits to path atomically.
func Save(path string, fruits []repository.Fruit) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir catalog dir: %w", err)
	}
	data, err := json.MarshalIndent(fruits, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func validate(fruits []repository.Fruit) error {
	seen := make(map[int]struct{}, len(fruits))
	for i, f := range fruits {
		if f.ID <= 0 {
			return fmt.Errorf("entry %d: id %d must be positive: %w", i, f.ID, ErrInvalid)
		}
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("entry %d (id %d): empty name: %w", i, f.ID, ErrInvalid)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("entry %d: duplicate id %d: %w", i, f.ID, ErrInvalid)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}
