package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fruitlist/internal/catalog"
	"github.com/jask/fruitlist/internal/config"
	"github.com/jask/fruitlist/internal/database"
	"github.com/jask/fruitlist/internal/database/repository"
	"github.com/jask/fruitlist/internal/service"
	"github.com/jask/fruitlist/internal/tui"
)

func main() {
	importPath := flag.String("import-catalog", "", "import a Fruityvice JSON catalog (overrides catalog.path)")
	exportPath := flag.String("export-catalog", "", "write the stored catalog as JSON and exit")
	resetFavorites := flag.Bool("reset-favorites", false, "remove every favorite and exit")
	unfavoriteID := flag.Int("unfavorite", 0, "remove one fruit id from favorites and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	// repositories
	fruitRepo := repository.NewFruitRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db, database.Now)

	source := cfg.Catalog.Path
	if *importPath != "" {
		source = *importPath
	}
	if source != "" {
		n, err := catalog.Import(ctx, db, fruitRepo, source)
		if err != nil {
			log.Fatalf("import catalog: %v", err)
		}
		fmt.Printf("imported %d fruits from %s\n", n, source)
	}

	switch {
	case *resetFavorites:
		maintenance := &service.MaintenanceService{DB: db, Favorites: favoriteRepo}
		if err := maintenance.ResetFavorites(ctx); err != nil {
			log.Fatalf("reset favorites: %v", err)
		}
		fmt.Println("favorites cleared")
		return
	case *unfavoriteID > 0:
		vm := service.NewFruitListViewModel(ctx, fruitRepo, favoriteRepo, service.FruitListOptions{})
		if err := unfavorite(vm, *unfavoriteID); err != nil {
			log.Fatalf("unfavorite: %v", err)
		}
		fmt.Printf("fruit %d removed from favorites\n", *unfavoriteID)
		return
	case *exportPath != "":
		fruits, err := fruitRepo.List(ctx)
		if err != nil {
			log.Fatalf("list catalog: %v", err)
		}
		if err := catalog.Save(*exportPath, fruits); err != nil {
			log.Fatalf("export catalog: %v", err)
		}
		fmt.Printf("exported %d fruits to %s\n", len(fruits), *exportPath)
		return
	}

	// the alt screen owns the terminal from here on
	if cfg.Log.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
			log.Fatalf("mkdir log dir: %v", err)
		}
		f, err := tea.LogToFile(cfg.Log.Path, "fruitlist")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	vm := service.NewFruitListViewModel(ctx, fruitRepo, favoriteRepo, service.FruitListOptions{
		Matcher:     cfg.Matcher(),
		InitialSort: cfg.InitialSort(),
	})
	screen := tui.New(vm, tui.Options{})
	defer screen.Close()

	p := tea.NewProgram(screen, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// unfavorite removes id from favorites through the view-model, the same path
// the screen's commands take.
func unfavorite(vm *service.FruitListViewModel, id int) error {
	vm.Initialize()
	if !slices.Contains(vm.FavoriteFruitIDs().Get(), id) {
		return fmt.Errorf("fruit %d: %w", id, repository.ErrNotFound)
	}
	vm.RemoveFromFavorite(id)
	if slices.Contains(vm.FavoriteFruitIDs().Get(), id) {
		return fmt.Errorf("fruit %d is still a favorite", id)
	}
	return nil
}
