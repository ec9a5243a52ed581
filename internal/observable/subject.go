// Package observable provides the subject that view-model shells publish
// attribute snapshots through.
//
// A Subject is not safe for concurrent use. All publications and
// subscription changes happen on one logical thread, the way UI state is
// owned by the main thread.
package observable

// Handler receives every value published after it subscribed.
type Handler[T any] func(T)

// Subscription represents a registered handler. Unsubscribe may be called
// any number of times, including from inside a handler.
type Subscription interface {
	Unsubscribe()
}

// Subject holds the latest value and notifies subscribers synchronously.
type Subject[T any] struct {
	latest    T
	hasLatest bool
	subs      []*subscriptionEntry[T]
	nextID    int
	published int

	publishing bool
	queue      []T
}

// NewSubject creates an empty subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Publish stores v as the latest value and hands it to every active
// subscriber in subscription order. Handlers added during the notification
// first see the next value; handlers removed during it are skipped.
//
// A Publish from inside a handler is queued and delivered after the current
// pass, so every subscriber sees values in publication order and ends on
// the latest one.
func (s *Subject[T]) Publish(v T) {
	s.latest = v
	s.hasLatest = true
	s.published++

	if s.publishing {
		s.queue = append(s.queue, v)
		return
	}

	s.publishing = true
	defer func() {
		s.publishing = false
		s.queue = nil
	}()

	for {
		s.notify(v)
		if len(s.queue) == 0 {
			return
		}
		v, s.queue = s.queue[0], s.queue[1:]
	}
}

func (s *Subject[T]) notify(v T) {
	handlers := append([]*subscriptionEntry[T](nil), s.subs...)
	for _, entry := range handlers {
		if !entry.active {
			continue
		}
		entry.handler(v)
	}
}

// Latest returns the most recently published value.
func (s *Subject[T]) Latest() (T, bool) {
	return s.latest, s.hasLatest
}

// Published counts Publish calls since creation.
func (s *Subject[T]) Published() int {
	return s.published
}

// Subscribers counts active subscriptions.
func (s *Subject[T]) Subscribers() int {
	return len(s.subs)
}

// Subscribe registers handler. It does not replay the latest value; read
// Latest for a synchronous first render.
func (s *Subject[T]) Subscribe(handler Handler[T]) Subscription {
	if handler == nil {
		return noopSubscription{}
	}

	s.nextID++
	entry := &subscriptionEntry[T]{id: s.nextID, handler: handler, active: true}
	s.subs = append(s.subs, entry)

	return subscription{
		cancel: func() {
			if !entry.active {
				return
			}
			entry.active = false
			remaining := make([]*subscriptionEntry[T], 0, len(s.subs))
			for _, existing := range s.subs {
				if existing.id != entry.id {
					remaining = append(remaining, existing)
				}
			}
			s.subs = remaining
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry[T any] struct {
	id      int
	handler Handler[T]
	active  bool
}
