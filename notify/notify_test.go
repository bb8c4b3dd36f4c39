package notify

import "testing"

func TestSubscribeAndNotify(t *testing.T) {
	n := New()

	calls := 0
	unsub := n.Subscribe(func() { calls++ })

	n.Notify()
	n.Notify()
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}

	unsub()
	n.Notify()
	if calls != 2 {
		t.Errorf("expected no calls after unsubscribe, got %d", calls)
	}
}

func TestNotifyWithNoSubscribers(t *testing.T) {
	n := New()
	n.Notify() // must not panic
	if n.Len() != 0 {
		t.Errorf("expected 0 subscribers, got %d", n.Len())
	}
}

func TestNotifyOrder(t *testing.T) {
	n := New()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		n.Subscribe(func() { order = append(order, i) })
	}

	n.Notify()
	for i, got := range order {
		if got != i {
			t.Fatalf("callbacks ran out of subscription order: %v", order)
		}
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	n := New()

	calls := 0
	unsub := n.Subscribe(func() { calls++ })
	n.Subscribe(func() { calls++ })

	unsub()
	unsub()
	if n.Len() != 1 {
		t.Errorf("expected 1 remaining subscriber, got %d", n.Len())
	}

	n.Notify()
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestSubscribeDuringNotify(t *testing.T) {
	n := New()

	lateCalls := 0
	n.Subscribe(func() {
		n.Subscribe(func() { lateCalls++ })
	})

	n.Notify()
	if lateCalls != 0 {
		t.Errorf("subscriber added during Notify must not run in that round, got %d calls", lateCalls)
	}

	n.Notify()
	if lateCalls != 1 {
		t.Errorf("subscriber added during Notify must run in the next round, got %d calls", lateCalls)
	}
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	n := New()

	calls := 0
	var unsub func()
	unsub = n.Subscribe(func() {
		calls++
		unsub()
	})

	n.Notify()
	n.Notify()
	if calls != 1 {
		t.Errorf("expected self-removing subscriber to run once, got %d", calls)
	}
	if n.Len() != 0 {
		t.Errorf("expected 0 subscribers, got %d", n.Len())
	}
}
