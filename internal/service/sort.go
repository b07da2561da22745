package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jask/fruitlist/internal/database/repository"
)

// NutritionSortType selects the nutrition field the fruit list is ordered by.
type NutritionSortType int

const (
	NoSorting NutritionSortType = iota
	SortByCarbohydrates
	SortByProtein
	SortByFat
	SortByCalories
	SortBySugar
)

// NutritionSortTypes lists every sort option in menu order.
var NutritionSortTypes = []NutritionSortType{
	NoSorting,
	SortByCarbohydrates,
	SortByProtein,
	SortByFat,
	SortByCalories,
	SortBySugar,
}

func (t NutritionSortType) String() string {
	switch t {
	case NoSorting:
		return "No sorting"
	case SortByCarbohydrates:
		return "Carbohydrates"
	case SortByProtein:
		return "Protein"
	case SortByFat:
		return "Fat"
	case SortByCalories:
		return "Calories"
	case SortBySugar:
		return "Sugar"
	default:
		return fmt.Sprintf("NutritionSortType(%d)", int(t))
	}
}

// ParseNutritionSortType accepts menu labels or their snake_case form,
// case-insensitively. An empty string means NoSorting.
func ParseNutritionSortType(s string) (NutritionSortType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", " ")
	if norm == "" {
		return NoSorting, nil
	}
	for _, t := range NutritionSortTypes {
		if strings.ToLower(t.String()) == norm {
			return t, nil
		}
	}
	return NoSorting, fmt.Errorf("unknown nutrition sort type %q", s)
}

func (t NutritionSortType) value(n repository.Nutritions) float64 {
	switch t {
	case SortByCarbohydrates:
		return n.Carbohydrates
	case SortByProtein:
		return n.Protein
	case SortByFat:
		return n.Fat
	case SortByCalories:
		return n.Calories
	case SortBySugar:
		return n.Sugar
	default:
		return 0
	}
}

// sortFruits orders fruits in place. NoSorting restores catalog (id) order;
// other types sort ascending by the nutrition field, ties by name.
func sortFruits(fruits []repository.Fruit, t NutritionSortType) {
	if t == NoSorting {
		sort.SliceStable(fruits, func(i, j int) bool { return fruits[i].ID < fruits[j].ID })
		return
	}
	sort.SliceStable(fruits, func(i, j int) bool {
		a, b := t.value(fruits[i].Nutritions), t.value(fruits[j].Nutritions)
		if a != b {
			return a < b
		}
		return fruits[i].Name < fruits[j].Name
	})
}
