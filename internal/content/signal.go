package content

import "sync"

// Signal is a small publish/subscribe channel. Handlers run synchronously on
// the publishing goroutine, in subscription order.
type Signal[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Subscribe registers fn and returns a function that removes it. The returned
// function may be called more than once.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers v to the current subscribers and reports how many received it.
func (s *Signal[T]) Publish(v T) int {
	s.mu.Lock()
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
	return len(subs)
}
