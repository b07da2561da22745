package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/fruitlist/internal/database"
	"github.com/jask/fruitlist/internal/database/repository"
)

// MaintenanceService houses destructive actions surfaced through the CLI.
type MaintenanceService struct {
	DB        *sql.DB
	Favorites *repository.FavoriteRepo
}

// ResetFavorites removes every favorite. The catalog is left untouched.
func (s *MaintenanceService) ResetFavorites(ctx context.Context) error {
	if s.DB == nil || s.Favorites == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := s.Favorites.Clear(ctx, tx); err != nil {
			return fmt.Errorf("reset favorites: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
