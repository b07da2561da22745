// Package tui renders the fruit list screen.
package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fruitlist/internal/database/repository"
	"github.com/jask/fruitlist/internal/observable"
	"github.com/jask/fruitlist/internal/service"
)

// ViewModel is the state owner behind the screen. Commands are
// fire-and-forget; the screen learns about their effect only through the
// two streams.
type ViewModel interface {
	Fruits() observable.Readable[[]repository.Fruit]
	FavoriteFruitIDs() observable.Readable[[]int]
	Initialize()
	FilterByName(query string)
	SortByNutrition(t service.NutritionSortType)
	AddToFavorite(id int)
}

// Options configures a Screen.
type Options struct {
	// Dispatch runs view-model commands. Defaults to a serial background
	// queue that preserves dispatch order.
	Dispatch Dispatcher
}

type focusArea int

const (
	focusSearch focusArea = iota
	focusList
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title, controls row and footer
	chromeHeight = 3
)

// Screen is the fruit list: a search field, a sort menu and a scrollable
// list of fruit cards.
type Screen struct {
	vm       ViewModel
	keys     keyMap
	help     help.Model
	dispatch Dispatcher
	queue    *serialQueue
	box      *mailbox
	subs     observable.Subscriptions
	mounted  bool
	closed   sync.Once

	search     textinput.Model
	focus      focusArea
	menuOpen   bool
	menuCursor int

	// latest stream values; the view-model stays the owner
	fruits    []repository.Fruit
	favorites []int
	list      fruitList

	width  int
	height int
}

func New(vm ViewModel, opts Options) *Screen {
	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = "search fruits"
	ti.Width = 24
	ti.Focus()

	s := &Screen{
		vm:       vm,
		keys:     defaultKeyMap(),
		help:     help.New(),
		box:      newMailbox(),
		search:   ti,
		focus:    focusSearch,
		dispatch: opts.Dispatch,
	}
	if s.dispatch == nil {
		s.queue = newSerialQueue()
		s.dispatch = s.queue.push
	}
	s.resize(defaultWidth, defaultHeight)
	return s
}

// Init mounts the screen: it subscribes to the view-model streams and asks
// the view-model to initialize. Mounting happens once per Screen.
func (s *Screen) Init() tea.Cmd {
	if s.mounted {
		return nil
	}
	s.mounted = true
	observable.Observe(&s.subs, s.vm.Fruits(), s.box.postFruits)
	observable.Observe(&s.subs, s.vm.FavoriteFruitIDs(), s.box.postFavorites)
	s.dispatch(s.vm.Initialize)
	return tea.Batch(s.box.wait(), textinput.Blink)
}

// Close unmounts the screen, dropping its subscriptions.
func (s *Screen) Close() {
	s.closed.Do(func() {
		s.subs.Clear()
		s.box.close()
		if s.queue != nil {
			s.queue.stop()
		}
	})
}

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case streamMsg:
		if m.fruits != nil {
			s.fruits = *m.fruits
		}
		if m.favorites != nil {
			s.favorites = *m.favorites
		}
		s.list.resetScroll()
		return s, s.box.wait()
	case tea.WindowSizeMsg:
		s.resize(m.Width, m.Height)
		return s, nil
	case tea.KeyMsg:
		if key.Matches(m, s.keys.ForceQuit) {
			s.Close()
			return s, tea.Quit
		}
		if s.menuOpen {
			return s.handleMenuKey(m)
		}
		if s.focus == focusSearch {
			return s.handleSearchKey(m)
		}
		return s.handleListKey(m)
	}
	if s.focus == focusSearch {
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, s.keys.Focus), key.Matches(m, s.keys.Dismiss):
		s.setFocus(focusList)
		return s, nil
	case key.Matches(m, s.keys.Sort):
		s.openMenu()
		return s, nil
	}
	prev := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(m)
	if query := s.search.Value(); query != prev {
		s.dispatch(func() { s.vm.FilterByName(query) })
	}
	return s, cmd
}

func (s *Screen) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(s.fruits)
	switch {
	case key.Matches(m, s.keys.Quit):
		s.Close()
		return s, tea.Quit
	case key.Matches(m, s.keys.Focus), key.Matches(m, s.keys.Search):
		return s, s.setFocus(focusSearch)
	case key.Matches(m, s.keys.Sort), key.Matches(m, s.keys.SortList):
		s.openMenu()
	case key.Matches(m, s.keys.Up):
		s.list.move(-1, count)
	case key.Matches(m, s.keys.Down):
		s.list.move(1, count)
	case key.Matches(m, s.keys.PageUp):
		s.list.move(-s.list.pageSize(), count)
	case key.Matches(m, s.keys.PageDown):
		s.list.move(s.list.pageSize(), count)
	case key.Matches(m, s.keys.Top):
		s.list.move(-count, count)
	case key.Matches(m, s.keys.Bottom):
		s.list.move(count, count)
	case key.Matches(m, s.keys.Favorite):
		s.favoriteSelected()
	}
	return s, nil
}

func (s *Screen) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, s.keys.Up):
		if s.menuCursor > 0 {
			s.menuCursor--
		}
	case key.Matches(m, s.keys.Down):
		if s.menuCursor < len(service.NutritionSortTypes)-1 {
			s.menuCursor++
		}
	case key.Matches(m, s.keys.Select):
		choice := service.NutritionSortTypes[s.menuCursor]
		s.menuOpen = false
		s.dispatch(func() { s.vm.SortByNutrition(choice) })
	case key.Matches(m, s.keys.Dismiss):
		s.menuOpen = false
	}
	return s, nil
}

// favoriteSelected forwards the outline star of the highlighted card. A
// filled star is inert.
func (s *Screen) favoriteSelected() {
	items := s.items()
	if s.list.cursor >= len(items) {
		return
	}
	item := items[s.list.cursor]
	if item.Favorited {
		return
	}
	id := item.Key
	s.dispatch(func() { s.vm.AddToFavorite(id) })
}

func (s *Screen) openMenu() {
	s.menuOpen = true
	s.menuCursor = 0
}

func (s *Screen) setFocus(f focusArea) tea.Cmd {
	s.focus = f
	if f == focusSearch {
		return s.search.Focus()
	}
	s.search.Blur()
	return nil
}

func (s *Screen) resize(width, height int) {
	s.width, s.height = width, height
	s.help.Width = width
	s.list.height = height - chromeHeight
	s.list.clamp(len(s.fruits))
}

func (s *Screen) items() []itemView {
	return buildItems(s.fruits, s.favorites)
}

func (s *Screen) View() string {
	searchBox := searchStyle.Render(s.search.View())
	controls := lipgloss.JoinHorizontal(lipgloss.Top, searchBox, sortTriggerStyle.Render("⇅ Sort"))

	body := s.list.view(s.items(), s.width)
	if s.menuOpen {
		body = overlayAt(padLines(body, s.list.height), s.renderMenu(), lipgloss.Width(searchBox), 0)
	}

	bindings := s.keys.listHelp()
	switch {
	case s.menuOpen:
		bindings = s.keys.menuHelp()
	case s.focus == focusSearch:
		bindings = s.keys.searchHelp()
	}
	footer := footerStyle.Width(s.width).Render(s.help.ShortHelpView(bindings))

	return strings.Join([]string{titleStyle.Render("Fruits"), controls, body, footer}, "\n")
}

func (s *Screen) renderMenu() string {
	lines := make([]string, len(service.NutritionSortTypes))
	for i, t := range service.NutritionSortTypes {
		if i == s.menuCursor {
			lines[i] = menuSelectedStyle.Render("▶ " + t.String())
			continue
		}
		lines[i] = menuItemStyle.Render("  " + t.String())
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func padLines(s string, n int) string {
	lines := splitLines(s)
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
