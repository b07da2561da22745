package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fruitlist/internal/database/repository"
)

// streamMsg carries the latest emissions of the view-model streams into the
// event loop. A nil field means that stream did not emit.
type streamMsg struct {
	fruits    *[]repository.Fruit
	favorites *[]int
}

// mailbox bridges observable callbacks, which may fire on any goroutine,
// into Bubble Tea messages. Emissions arriving between two reads coalesce
// to the newest value per stream; the newest value is never dropped.
type mailbox struct {
	mu        sync.Mutex
	fruits    *[]repository.Fruit
	favorites *[]int
	wake      chan struct{}
	done      chan struct{}
	once      sync.Once
}

func newMailbox() *mailbox {
	return &mailbox{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (b *mailbox) postFruits(fruits []repository.Fruit) {
	b.mu.Lock()
	b.fruits = &fruits
	b.mu.Unlock()
	b.signal()
}

func (b *mailbox) postFavorites(ids []int) {
	b.mu.Lock()
	b.favorites = &ids
	b.mu.Unlock()
	b.signal()
}

func (b *mailbox) signal() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// poll takes whatever is pending without blocking.
func (b *mailbox) poll() (streamMsg, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fruits == nil && b.favorites == nil {
		return streamMsg{}, false
	}
	msg := streamMsg{fruits: b.fruits, favorites: b.favorites}
	b.fruits, b.favorites = nil, nil
	return msg, true
}

// wait blocks until an emission is pending or the mailbox is closed.
func (b *mailbox) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-b.done:
				return nil
			case <-b.wake:
				if msg, ok := b.poll(); ok {
					return msg
				}
			}
		}
	}
}

func (b *mailbox) close() {
	b.once.Do(func() { close(b.done) })
}
