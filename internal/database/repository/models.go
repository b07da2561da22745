package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Nutritions holds per-fruit nutrition figures. Units are whatever the
// catalog provides (grams per 100g, kcal for calories).
type Nutritions struct {
	Calories      float64 `json:"calories"`
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Sugar         float64 `json:"sugar"`
}

// Fruit represents a fruits row.
type Fruit struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Family     string     `json:"family"`
	Genus      string     `json:"genus"`
	Order      string     `json:"order"`
	Nutritions Nutritions `json:"nutritions"`
}

// Favorite represents a favorites row.
type Favorite struct {
	ID        string
	FruitID   int
	CreatedAt time.Time
}
