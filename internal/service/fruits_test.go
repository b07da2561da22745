package service

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/fruitlist/internal/database"
	"github.com/jask/fruitlist/internal/database/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return db
}

func newTestViewModel(t *testing.T) (*FruitListViewModel, *sql.DB) {
	t.Helper()
	db := newTestDB(t)
	vm := NewFruitListViewModel(context.Background(),
		repository.NewFruitRepo(db), repository.NewFavoriteRepo(db, database.Now),
		FruitListOptions{Matcher: NameMatcher{MaxTypoDistance: 1, FuzzyMinLength: 4}})
	return vm, db
}

func names(fruits []repository.Fruit) []string {
	out := make([]string, 0, len(fruits))
	for _, f := range fruits {
		out = append(out, f.Name)
	}
	return out
}

func TestInitializePublishesCatalogAndFavorites(t *testing.T) {
	vm, db := newTestViewModel(t)
	require.NoError(t, repository.NewFavoriteRepo(db, database.Now).Add(context.Background(), 6))

	var emissions int
	defer vm.Fruits().Subscribe(func([]repository.Fruit) { emissions++ })()
	require.Empty(t, vm.Fruits().Get())

	vm.Initialize()

	require.Len(t, vm.Fruits().Get(), len(database.DefaultFruits))
	require.Equal(t, []int{6}, vm.FavoriteFruitIDs().Get())
	require.Equal(t, 2, emissions)
}

func TestFilterByNameComposesWithSort(t *testing.T) {
	vm, _ := newTestViewModel(t)
	vm.Initialize()

	vm.FilterByName("berry")
	require.Equal(t, []string{"Strawberry", "Raspberry", "Blackberry"}, names(vm.Fruits().Get()))

	vm.SortByNutrition(SortByProtein)
	require.Equal(t, []string{"Strawberry", "Raspberry", "Blackberry"}, names(vm.Fruits().Get()))

	vm.SortByNutrition(SortByCalories)
	require.Equal(t, []string{"Strawberry", "Blackberry", "Raspberry"}, names(vm.Fruits().Get()))
	require.Equal(t, SortByCalories, vm.SortType())

	vm.FilterByName("")
	all := vm.Fruits().Get()
	require.Len(t, all, len(database.DefaultFruits))
	require.Equal(t, "Lemon", all[0].Name)
	require.Equal(t, "Durian", all[len(all)-1].Name)
}

func TestUnchangedListIsNotRepublished(t *testing.T) {
	vm, _ := newTestViewModel(t)
	vm.Initialize()

	var emissions int
	defer vm.Fruits().Subscribe(func([]repository.Fruit) { emissions++ })()

	vm.FilterByName("berry")
	vm.FilterByName("BERRY")
	vm.SortByNutrition(SortByProtein)
	require.Equal(t, 2, emissions)

	vm.SortByNutrition(SortByCalories)
	require.Equal(t, 3, emissions)
}

func TestFilterByNameToleratesTypos(t *testing.T) {
	vm, _ := newTestViewModel(t)
	vm.Initialize()

	vm.FilterByName("Bananna")
	require.Equal(t, []string{"Banana"}, names(vm.Fruits().Get()))
	require.Equal(t, "Bananna", vm.Query())

	vm.FilterByName("zzz")
	require.Empty(t, vm.Fruits().Get())
}

func TestAddToFavoritePublishesOnlyOnChange(t *testing.T) {
	vm, _ := newTestViewModel(t)
	vm.Initialize()

	var got [][]int
	defer vm.FavoriteFruitIDs().Subscribe(func(ids []int) { got = append(got, ids) })()

	vm.AddToFavorite(27)
	vm.AddToFavorite(27)
	vm.AddToFavorite(1)
	vm.RemoveFromFavorite(27)

	require.Equal(t, [][]int{{}, {27}, {27, 1}, {1}}, got)
}

func TestAddToFavoriteUnknownFruitKeepsState(t *testing.T) {
	vm, _ := newTestViewModel(t)
	vm.Initialize()

	vm.AddToFavorite(9999)
	vm.RemoveFromFavorite(9999)
	require.Empty(t, vm.FavoriteFruitIDs().Get())
}

type failingSource struct{}

func (failingSource) List(context.Context) ([]repository.Fruit, error) {
	return nil, errors.New("disk on fire")
}

func TestInitializeFailureKeepsPreviousValues(t *testing.T) {
	db := newTestDB(t)
	vm := NewFruitListViewModel(context.Background(), failingSource{}, repository.NewFavoriteRepo(db, database.Now), FruitListOptions{})

	vm.Initialize()
	require.Empty(t, vm.Fruits().Get())
	require.Empty(t, vm.FavoriteFruitIDs().Get())
}

func TestInitialSortApplies(t *testing.T) {
	db := newTestDB(t)
	vm := NewFruitListViewModel(context.Background(),
		repository.NewFruitRepo(db), repository.NewFavoriteRepo(db, database.Now),
		FruitListOptions{InitialSort: SortBySugar})
	vm.Initialize()

	fruits := vm.Fruits().Get()
	require.Equal(t, "Lemon", fruits[0].Name)
}

func TestResetFavorites(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	favs := repository.NewFavoriteRepo(db, database.Now)
	require.NoError(t, favs.Add(ctx, 1))
	require.NoError(t, favs.Add(ctx, 2))

	m := &MaintenanceService{DB: db, Favorites: favs}
	require.NoError(t, m.ResetFavorites(ctx))

	ids, err := favs.ListFruitIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)
	n, err := repository.NewFruitRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(database.DefaultFruits), n)

	require.Error(t, (&MaintenanceService{}).ResetFavorites(ctx))
}
