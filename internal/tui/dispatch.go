package tui

import "sync"

// Dispatcher hands a view-model command off for execution. It must not
// block the caller.
type Dispatcher func(fn func())

// serialQueue runs dispatched commands one at a time, in dispatch order, on
// its own goroutine so the event loop never waits on the view-model.
type serialQueue struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newSerialQueue() *serialQueue {
	q := &serialQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *serialQueue) push(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *serialQueue) run() {
	for {
		select {
		case <-q.done:
			return
		case <-q.wake:
		}
		for {
			q.mu.Lock()
			if len(q.pending) == 0 {
				q.mu.Unlock()
				break
			}
			fn := q.pending[0]
			q.pending = q.pending[1:]
			q.mu.Unlock()
			fn()
		}
	}
}

func (q *serialQueue) stop() {
	q.once.Do(func() { close(q.done) })
}
