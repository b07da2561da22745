package tui

import (
	"strings"

	"github.com/jask/fruitlist/internal/database/repository"
)

// cardHeight is the rendered height of one fruit card: border, name row and
// three nutrition rows.
const cardHeight = 6

// itemView is one list row, keyed by fruit id.
type itemView struct {
	Key       int
	Fruit     repository.Fruit
	Favorited bool
}

// fruitList keeps the scroll window over the current fruits.
type fruitList struct {
	cursor int
	offset int
	height int
}

func (l *fruitList) pageSize() int {
	if n := l.height / cardHeight; n > 0 {
		return n
	}
	return 1
}

func (l *fruitList) resetScroll() {
	l.cursor = 0
	l.offset = 0
}

func (l *fruitList) move(delta, count int) {
	if count == 0 {
		l.resetScroll()
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= count {
		l.cursor = count - 1
	}
	l.clamp(count)
}

// clamp keeps the cursor inside the visible window.
func (l *fruitList) clamp(count int) {
	page := l.pageSize()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+page {
		l.offset = l.cursor - page + 1
	}
	if last := count - page; l.offset > last {
		l.offset = last
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// visible returns the half-open index range of items to draw.
func (l *fruitList) visible(count int) (int, int) {
	start := l.offset
	if start > count {
		start = count
	}
	end := start + l.pageSize()
	if end > count {
		end = count
	}
	return start, end
}

// buildItems pairs each fruit with its favorite state, derived from ids.
func buildItems(fruits []repository.Fruit, favoriteIDs []int) []itemView {
	favorites := make(map[int]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = struct{}{}
	}
	items := make([]itemView, len(fruits))
	for i, f := range fruits {
		_, fav := favorites[f.ID]
		items[i] = itemView{Key: f.ID, Fruit: f, Favorited: fav}
	}
	return items
}

func (l *fruitList) view(items []itemView, width int) string {
	if len(items) == 0 {
		return emptyStyle.Render("No fruits match.")
	}
	start, end := l.visible(len(items))
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, renderFruitItem(items[i], i == l.cursor, width))
	}
	return strings.Join(cards, "\n")
}
