package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/fruitlist/internal/database/repository"
)

// DefaultFruits is the baseline catalog written into an empty database.
var DefaultFruits = []repository.Fruit{
	{ID: 1, Name: "Banana", Family: "Musaceae", Genus: "Musa", Order: "Zingiberales", Nutritions: repository.Nutritions{Calories: 96, Carbohydrates: 22, Protein: 1, Fat: 0.2, Sugar: 17.2}},
	{ID: 2, Name: "Orange", Family: "Rutaceae", Genus: "Citrus", Order: "Sapindales", Nutritions: repository.Nutritions{Calories: 43, Carbohydrates: 8.3, Protein: 1, Fat: 0.2, Sugar: 8.2}},
	{ID: 3, Name: "Strawberry", Family: "Rosaceae", Genus: "Fragaria", Order: "Rosales", Nutritions: repository.Nutritions{Calories: 29, Carbohydrates: 5.5, Protein: 0.8, Fat: 0.4, Sugar: 5.4}},
	{ID: 4, Name: "Pear", Family: "Rosaceae", Genus: "Pyrus", Order: "Rosales", Nutritions: repository.Nutritions{Calories: 57, Carbohydrates: 15, Protein: 0.4, Fat: 0.1, Sugar: 10}},
	{ID: 5, Name: "Tomato", Family: "Solanaceae", Genus: "Solanum", Order: "Solanales", Nutritions: repository.Nutritions{Calories: 74, Carbohydrates: 3.9, Protein: 0.9, Fat: 0.2, Sugar: 2.6}},
	{ID: 6, Name: "Apple", Family: "Rosaceae", Genus: "Malus", Order: "Rosales", Nutritions: repository.Nutritions{Calories: 52, Carbohydrates: 11.4, Protein: 0.3, Fat: 0.4, Sugar: 10.3}},
	{ID: 9, Name: "Cherry", Family: "Rosaceae", Genus: "Prunus", Order: "Rosales", Nutritions: repository.Nutritions{Calories: 50, Carbohydrates: 12, Protein: 1, Fat: 0.3, Sugar: 8}},
	{ID: 10, Name: "Pineapple", Family: "Bromeliaceae", Genus: "Ananas", Order: "Poales", Nutritions: repository.Nutritions{Calories: 50, Carbohydrates: 13.12, Protein: 0.54, Fat: 0.12, Sugar: 9.85}},
	{ID: 23, Name: "Raspberry", Family: "Rosaceae", Genus: "Rubus", Order: "Rosales", Nutritions: repository.Nutritions{Calories: 53, Carbohydrates: 12, Protein: 1.2, Fat: 0.7, Sugar: 4.4}},
	{ID: 25, Name: "Watermelon", Family: "Cucurbitaceae", Genus: "Citrullus", Order: "Cucurbitales", Nutritions: repository.Nutritions{Calories: 30, Carbohydrates: 8, Protein: 0.6, Fat: 0.2, Sugar: 6}},
	{ID: 26, Name: "Lemon", Family: "Rutaceae", Genus: "Citrus", Order: "Sapindales", Nutritions: repository.Nutritions{Calories: 29, Carbohydrates: 9, Protein: 1.1, Fat: 0.3, Sugar: 2.5}},
	{ID: 27, Name: "Mango", Family: "Anacardiaceae", Genus: "Mangifera", Order: "Sapindales", Nutritions: repository.Nutritions{Calories: 60, Carbohydrates: 15, Protein: 0.82, Fat: 0.38, Sugar: 13.7}},
	{ID: 60, Name: "Durian", Family: "Malvaceae", Genus: "Durio", Order: "Malvales", Nutritions: repository.Nutritions{Calories: 147, Carbohydrates: 27.1, Protein: 1.5, Fat: 5.3, Sugar: 6.75}},
	{ID: 64, Name: "Blackberry", Family: "Rosaceae", Genus: "Rubus", Order: "Rosales", Nutritions: repository.Nutritions{Calories: 40, Carbohydrates: 9, Protein: 1.3, Fat: 0.4, Sugar: 4.5}},
	{ID: 66, Name: "Kiwi", Family: "Actinidiaceae", Genus: "Actinidia", Order: "Ericales", Nutritions: repository.Nutritions{Calories: 61, Carbohydrates: 15, Protein: 1.1, Fat: 0.5, Sugar: 9}},
	{ID: 67, Name: "Lychee", Family: "Sapindaceae", Genus: "Litchi", Order: "Sapindales", Nutritions: repository.Nutritions{Calories: 66, Carbohydrates: 17, Protein: 0.8, Fat: 0.44, Sugar: 15}},
	{ID: 68, Name: "Fig", Family: "Moraceae", Genus: "Ficus", Order: "Rosales", Nutritions: repository.Nutritions{Calories: 74, Carbohydrates: 19, Protein: 0.8, Fat: 0.3, Sugar: 16}},
	{ID: 70, Name: "Passionfruit", Family: "Passifloraceae", Genus: "Passiflora", Order: "Malpighiales", Nutritions: repository.Nutritions{Calories: 97, Carbohydrates: 22.4, Protein: 2.2, Fat: 0.7, Sugar: 11.2}},
	{ID: 71, Name: "Plum", Family: "Rosaceae", Genus: "Prunus", Order: "Rosales", Nutritions: repository.Nutritions{Calories: 46, Carbohydrates: 11.4, Protein: 0.7, Fat: 0.28, Sugar: 9.92}},
}

// SeedDefaults writes DefaultFruits when the catalog is empty.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	fruits := repository.NewFruitRepo(db)
	n, err := fruits.Count(ctx)
	if err != nil {
		return fmt.Errorf("count fruits: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, f := range DefaultFruits {
		if err := fruits.Upsert(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
