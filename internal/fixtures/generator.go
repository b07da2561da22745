// Package fixtures generates deterministic fruit catalogs for tests.
package fixtures

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jask/fruitlist/internal/database/repository"
)

var names = []string{"Apple", "Banana", "Cherry", "Durian", "Fig", "Guava", "Kiwi", "Lime", "Mango", "Papaya", "Quince", "Yuzu"}

// Fruits returns n fruits with ids 1..n and random nutrition figures.
// The same seed always yields the same catalog.
func Fruits(n int, seed int64) []repository.Fruit {
	rng := rand.New(rand.NewSource(seed))
	out := make([]repository.Fruit, 0, n)
	for i := 1; i <= n; i++ {
		name := names[rng.Intn(len(names))]
		out = append(out, repository.Fruit{
			ID:   i,
			Name: fmt.Sprintf("%s %d", name, i),
			Nutritions: repository.Nutritions{
				Calories:      float64(rng.Intn(150)),
				Carbohydrates: float64(rng.Intn(300)) / 10,
				Protein:       float64(rng.Intn(30)) / 10,
				Fat:           float64(rng.Intn(60)) / 10,
				Sugar:         float64(rng.Intn(200)) / 10,
			},
		})
	}
	return out
}

// Seed writes Fruits(n, seed) through repo.
func Seed(ctx context.Context, repo *repository.FruitRepo, n int, seed int64) error {
	for _, f := range Fruits(n, seed) {
		if err := repo.Upsert(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
