package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	starFilled  = "★"
	starOutline = "☆"
)

func renderFruitItem(item itemView, selected bool, width int) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	star := outlineStyle.Render(starOutline)
	if item.Favorited {
		star = favoritedStyle.Render(starFilled)
	}
	name := fruitNameStyle.Render(ansi.Truncate(item.Fruit.Name, inner-lipgloss.Width(star)-1, "…"))
	gap := inner - lipgloss.Width(name) - lipgloss.Width(star)
	if gap < 1 {
		gap = 1
	}
	header := name + strings.Repeat(" ", gap) + star

	n := item.Fruit.Nutritions
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		nutritionRow(inner, nutrient("Calories", n.Calories)),
		nutritionRow(inner, nutrient("Carbohydrates", n.Carbohydrates), nutrient("Sugar", n.Sugar)),
		nutritionRow(inner, nutrient("Protein", n.Protein), nutrient("Fat", n.Fat)),
	)
	return style.Width(inner + style.GetHorizontalPadding()).Render(body)
}

// nutritionRow spreads cells evenly across width, one line each so the card
// keeps cardHeight.
func nutritionRow(width int, cells ...string) string {
	colWidth := width / len(cells)
	cols := make([]string, len(cells))
	for i, c := range cells {
		c = ansi.Truncate(c, colWidth, "…")
		cols[i] = nutritionStyle.Width(colWidth).MaxHeight(1).Align(lipgloss.Center).Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func nutrient(label string, v float64) string {
	return fmt.Sprintf("%s: %s", label, strconv.FormatFloat(v, 'f', -1, 64))
}
