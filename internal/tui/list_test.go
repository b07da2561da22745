package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/jask/fruitlist/internal/database/repository"
)

func TestFruitListMoveClamps(t *testing.T) {
	l := fruitList{height: 2 * cardHeight}
	l.move(-1, 5)
	require.Equal(t, 0, l.cursor)

	l.move(3, 5)
	require.Equal(t, 3, l.cursor)
	require.Equal(t, 2, l.offset)

	l.move(10, 5)
	require.Equal(t, 4, l.cursor)
	require.Equal(t, 3, l.offset)

	l.move(-2, 5)
	require.Equal(t, 2, l.cursor)
	require.Equal(t, 2, l.offset)

	start, end := l.visible(5)
	require.Equal(t, 2, start)
	require.Equal(t, 4, end)

	l.move(1, 0)
	require.Zero(t, l.cursor)
	require.Zero(t, l.offset)
}

func TestFruitListTinyWindowShowsOneCard(t *testing.T) {
	l := fruitList{height: 2}
	require.Equal(t, 1, l.pageSize())
}

func TestBuildItemsDuplicatesInFavorites(t *testing.T) {
	items := buildItems([]repository.Fruit{{ID: 1}, {ID: 2}}, []int{2, 2, 8})
	require.False(t, items[0].Favorited)
	require.True(t, items[1].Favorited)
}

func TestNarrowCardKeepsCardHeight(t *testing.T) {
	item := itemView{Fruit: repository.Fruit{
		ID:   9,
		Name: "Strawberry guava of unusual length",
		Nutritions: repository.Nutritions{
			Calories: 68, Carbohydrates: 22.41, Protein: 2.55, Fat: 0.95, Sugar: 8.92,
		},
	}}
	for _, width := range []int{0, 30, 36} {
		card := renderFruitItem(item, false, width)
		require.Equal(t, cardHeight, lipgloss.Height(card), "width %d:\n%s", width, card)
		require.Contains(t, card, "…")
	}

	wide := renderFruitItem(item, true, 80)
	require.Equal(t, cardHeight, lipgloss.Height(wide))
	require.Contains(t, wide, "Carbohydrates: 22.41")
}

func TestOverlayAt(t *testing.T) {
	base := "aaaaaa\nbbbbbb\ncccccc"
	got := overlayAt(base, "XY\nZW", 2, 1)
	require.Equal(t, "aaaaaa\nbbXYbb\nccZWcc", got)

	got = overlayAt("ab", "XYZ", 4, 0)
	require.Equal(t, "ab  XYZ", got)
}
