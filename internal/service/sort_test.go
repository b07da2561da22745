package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/fruitlist/internal/database/repository"
	"github.com/jask/fruitlist/internal/fixtures"
)

func TestNutritionSortTypeLabels(t *testing.T) {
	var labels []string
	for _, st := range NutritionSortTypes {
		labels = append(labels, st.String())
	}
	require.Equal(t, []string{"No sorting", "Carbohydrates", "Protein", "Fat", "Calories", "Sugar"}, labels)
}

func TestParseNutritionSortType(t *testing.T) {
	for _, st := range NutritionSortTypes {
		got, err := ParseNutritionSortType(st.String())
		require.NoError(t, err)
		require.Equal(t, st, got)
	}
	got, err := ParseNutritionSortType("no_sorting")
	require.NoError(t, err)
	require.Equal(t, NoSorting, got)

	got, err = ParseNutritionSortType("")
	require.NoError(t, err)
	require.Equal(t, NoSorting, got)

	_, err = ParseNutritionSortType("vitamin c")
	require.Error(t, err)
}

func TestSortFruitsAscendingByField(t *testing.T) {
	fruits := fixtures.Fruits(40, 7)
	for _, st := range NutritionSortTypes[1:] {
		sortFruits(fruits, st)
		for i := 1; i < len(fruits); i++ {
			prev, cur := st.value(fruits[i-1].Nutritions), st.value(fruits[i].Nutritions)
			require.LessOrEqual(t, prev, cur, "%s out of order at %d", st, i)
			if prev == cur {
				require.LessOrEqual(t, fruits[i-1].Name, fruits[i].Name)
			}
		}
	}
}

func TestNoSortingRestoresIDOrder(t *testing.T) {
	fruits := fixtures.Fruits(25, 3)
	sortFruits(fruits, SortBySugar)
	sortFruits(fruits, NoSorting)
	for i, f := range fruits {
		require.Equal(t, i+1, f.ID)
	}
}

func TestSortTiesBreakByName(t *testing.T) {
	fruits := []repository.Fruit{
		{ID: 1, Name: "Pear", Nutritions: repository.Nutritions{Fat: 0.1}},
		{ID: 2, Name: "Lime", Nutritions: repository.Nutritions{Fat: 0.1}},
		{ID: 3, Name: "Durian", Nutritions: repository.Nutritions{Fat: 5.3}},
	}
	sortFruits(fruits, SortByFat)
	require.Equal(t, []string{"Lime", "Pear", "Durian"}, []string{fruits[0].Name, fruits[1].Name, fruits[2].Name})
}
