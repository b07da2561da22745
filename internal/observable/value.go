// Package observable provides a small publish/subscribe value used to push
// view-model state to screens.
package observable

import "sync"

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// Readable exposes read-only observable state.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) func()
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Value holds a current value and notifies subscribers on change.
//
// Deliveries are serialized by notify, so every subscriber sees values in
// the order they were stored and the last value it receives is the current
// one. Subscribers must not call Set on the value that is notifying them.
type Value[T any] struct {
	notify sync.Mutex
	mu     sync.Mutex
	value  T
	subs   []subscriber[T]
	next   int
	equal  EqualFunc[T]
}

// NewValue creates a value with an initial state.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// SetEqualFunc configures the check used to suppress redundant updates.
func (v *Value[T]) SetEqualFunc(fn EqualFunc[T]) {
	v.mu.Lock()
	v.equal = fn
	v.mu.Unlock()
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores value and notifies subscribers in registration order.
// It reports false when the equality func considers value unchanged.
func (v *Value[T]) Set(value T) bool {
	v.notify.Lock()
	defer v.notify.Unlock()

	v.mu.Lock()
	if v.equal != nil && v.equal(v.value, value) {
		v.mu.Unlock()
		return false
	}
	v.value = value
	subs := make([]subscriber[T], len(v.subs))
	copy(subs, v.subs)
	v.mu.Unlock()

	for _, sub := range subs {
		sub.fn(value)
	}
	return true
}

// Subscribe delivers the current value to fn immediately and every later
// value as it is set. The returned func unsubscribes; calling it twice is
// harmless.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	v.notify.Lock()
	v.mu.Lock()
	id := v.next
	v.next++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	current := v.value
	v.mu.Unlock()

	fn(current)
	v.notify.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			for i, sub := range v.subs {
				if sub.id == id {
					v.subs = append(v.subs[:i], v.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// Subscriptions tracks unsubscribe callbacks so they can be torn down together.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
}

// Add registers an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Observe subscribes fn to r and tracks the unsubscribe.
func Observe[T any](s *Subscriptions, r Readable[T], fn func(T)) {
	s.Add(r.Subscribe(fn))
}

// Clear unsubscribes everything tracked so far.
func (s *Subscriptions) Clear() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}
