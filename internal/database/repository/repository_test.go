package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/fruitlist/internal/database"
	"github.com/jask/fruitlist/internal/database/repository"
	"github.com/jask/fruitlist/internal/fixtures"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestFruitRepoUpsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFruitRepo(newTestDB(t))

	kiwi := repository.Fruit{ID: 66, Name: "Kiwi", Family: "Actinidiaceae", Nutritions: repository.Nutritions{Calories: 61, Sugar: 9}}
	apple := repository.Fruit{ID: 6, Name: "Apple", Nutritions: repository.Nutritions{Calories: 52, Carbohydrates: 11.4}}
	require.NoError(t, repo.Upsert(ctx, kiwi))
	require.NoError(t, repo.Upsert(ctx, apple))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []repository.Fruit{apple, kiwi}, list)

	apple.Nutritions.Protein = 0.3
	require.NoError(t, repo.Upsert(ctx, apple))
	got, err := repo.Get(ctx, 6)
	require.NoError(t, err)
	require.Equal(t, 0.3, got.Nutritions.Protein)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestFruitRepoListLargeCatalog(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFruitRepo(newTestDB(t))
	require.NoError(t, fixtures.Seed(ctx, repo, 200, 42))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, fixtures.Fruits(200, 42), list)
}

func TestFruitRepoGetMissing(t *testing.T) {
	repo := repository.NewFruitRepo(newTestDB(t))
	_, err := repo.Get(context.Background(), 404)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFavoriteRepoAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	fruits := repository.NewFruitRepo(db)
	favs := repository.NewFavoriteRepo(db, database.Now)
	for _, f := range []repository.Fruit{{ID: 7, Name: "Fig"}, {ID: 42, Name: "Lime"}} {
		require.NoError(t, fruits.Upsert(ctx, f))
	}

	require.NoError(t, favs.Add(ctx, 42))
	require.NoError(t, favs.Add(ctx, 7))
	require.NoError(t, favs.Add(ctx, 42))

	ids, err := favs.ListFruitIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{42, 7}, ids)

	rows, err := favs.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotEmpty(t, rows[0].ID)
}

func TestFavoriteRepoStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	fruits := repository.NewFruitRepo(db)
	for _, f := range []repository.Fruit{{ID: 1, Name: "Banana"}, {ID: 2, Name: "Orange"}, {ID: 3, Name: "Strawberry"}} {
		require.NoError(t, fruits.Upsert(ctx, f))
	}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	stamps := []time.Time{base.Add(2 * time.Hour), base, base.Add(time.Hour)}
	calls := 0
	favs := repository.NewFavoriteRepo(db, func() time.Time {
		ts := stamps[calls]
		calls++
		return ts
	})
	for _, id := range []int{1, 2, 3} {
		require.NoError(t, favs.Add(ctx, id))
	}

	ids, err := favs.ListFruitIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1}, ids)

	rows, err := favs.List(ctx)
	require.NoError(t, err)
	require.True(t, rows[0].CreatedAt.Equal(base), "got %s", rows[0].CreatedAt)
}

func TestFavoriteRepoRequiresKnownFruit(t *testing.T) {
	favs := repository.NewFavoriteRepo(newTestDB(t), database.Now)
	require.Error(t, favs.Add(context.Background(), 999))
}

func TestFavoriteRepoRemove(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, repository.NewFruitRepo(db).Upsert(ctx, repository.Fruit{ID: 7, Name: "Fig"}))
	favs := repository.NewFavoriteRepo(db, database.Now)
	require.NoError(t, favs.Add(ctx, 7))

	require.NoError(t, favs.Remove(ctx, 7))
	require.ErrorIs(t, favs.Remove(ctx, 7), repository.ErrNotFound)

	ids, err := favs.ListFruitIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestFavoriteRepoClear(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, repository.NewFruitRepo(db).Upsert(ctx, repository.Fruit{ID: 7, Name: "Fig"}))
	favs := repository.NewFavoriteRepo(db, database.Now)
	require.NoError(t, favs.Add(ctx, 7))

	require.NoError(t, database.WithTx(ctx, db, func(tx *sql.Tx) error {
		return favs.Clear(ctx, tx)
	}))
	ids, err := favs.ListFruitIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)
}
