package observable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjectDeliversInOrder(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	var got []string
	subject.Subscribe(func(v int) { got = append(got, "a") })
	subject.Subscribe(func(v int) { got = append(got, "b") })

	subject.Publish(1)
	require.Equal(t, []string{"a", "b"}, got)

	latest, ok := subject.Latest()
	require.True(t, ok)
	require.Equal(t, 1, latest)
	require.Equal(t, 1, subject.Published())
}

func TestSubjectLatestBeforePublish(t *testing.T) {
	t.Parallel()

	subject := NewSubject[string]()
	_, ok := subject.Latest()
	require.False(t, ok)
}

func TestSubscribeDoesNotReplay(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	subject.Publish(7)

	calls := 0
	subject.Subscribe(func(int) { calls++ })
	require.Zero(t, calls)

	subject.Publish(8)
	require.Equal(t, 1, calls)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	calls := 0
	sub := subject.Subscribe(func(int) { calls++ })
	other := subject.Subscribe(func(int) {})

	sub.Unsubscribe()
	sub.Unsubscribe()
	require.Equal(t, 1, subject.Subscribers())

	subject.Publish(1)
	require.Zero(t, calls)

	other.Unsubscribe()
	require.Zero(t, subject.Subscribers())
}

func TestUnsubscribeDuringNotificationSkipsRemovedHandler(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	var second Subscription
	secondCalls := 0

	subject.Subscribe(func(int) { second.Unsubscribe() })
	second = subject.Subscribe(func(int) { secondCalls++ })

	require.NotPanics(t, func() { subject.Publish(1) })
	require.Zero(t, secondCalls)
	require.Equal(t, 1, subject.Subscribers())
}

func TestSelfUnsubscribeDuringNotification(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	var sub Subscription
	calls := 0
	sub = subject.Subscribe(func(int) {
		calls++
		sub.Unsubscribe()
	})

	subject.Publish(1)
	subject.Publish(2)
	require.Equal(t, 1, calls)
}

func TestSubscribeDuringNotificationStartsWithNextValue(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	var late []int
	subscribed := false
	subject.Subscribe(func(int) {
		if subscribed {
			return
		}
		subscribed = true
		subject.Subscribe(func(v int) { late = append(late, v) })
	})

	subject.Publish(1)
	subject.Publish(2)
	require.Equal(t, []int{2}, late)
}

func TestNilHandlerReturnsNoopSubscription(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	sub := subject.Subscribe(nil)
	require.NotPanics(t, sub.Unsubscribe)
	require.Zero(t, subject.Subscribers())
}

func TestPublishFromHandlerIsDeliveredAfterCurrentPass(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	var first, second []int
	subject.Subscribe(func(v int) {
		first = append(first, v)
		if v == 1 {
			subject.Publish(2)
		}
	})
	subject.Subscribe(func(v int) { second = append(second, v) })

	subject.Publish(1)
	require.Equal(t, []int{1, 2}, first)
	require.Equal(t, []int{1, 2}, second)

	latest, _ := subject.Latest()
	require.Equal(t, 2, latest)
	require.Equal(t, 2, subject.Published())
}

func TestChainedPublishesKeepOrder(t *testing.T) {
	t.Parallel()

	subject := NewSubject[int]()
	var seen []int
	subject.Subscribe(func(v int) {
		if v < 3 {
			subject.Publish(v + 1)
		}
	})
	subject.Subscribe(func(v int) { seen = append(seen, v) })

	subject.Publish(0)
	require.Equal(t, []int{0, 1, 2, 3}, seen)

	subject.Publish(10)
	require.Equal(t, []int{0, 1, 2, 3, 10}, seen)
}
