// Package notify is the process-wide change signal for the domain store.
// Subscribers receive no payload; they are expected to re-read whatever
// collections they care about.
package notify

import (
	"sort"
	"sync"
)

// Notifier fans a change signal out to registered callbacks. The subscriber
// list is copy-on-write so Subscribe and unsubscribe are safe to call from
// inside a callback, and Notify iterates a frozen snapshot.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

// New returns an empty Notifier.
func New() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers cb and returns a function that removes it. The
// returned function is idempotent.
func (n *Notifier) Subscribe(cb func()) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	next := make(map[int]func(), len(n.subs)+1)
	for k, v := range n.subs {
		next[k] = v
	}
	next[id] = cb
	n.subs = next
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		if _, ok := n.subs[id]; ok {
			next := make(map[int]func(), len(n.subs)-1)
			for k, v := range n.subs {
				if k != id {
					next[k] = v
				}
			}
			n.subs = next
		}
		n.mu.Unlock()
	}
}

// Notify invokes every currently registered callback synchronously, in
// subscription order, outside the notifier's lock. Callbacks must be quick;
// anything slow belongs on the subscriber's own goroutine.
func (n *Notifier) Notify() {
	n.mu.Lock()
	ids := make([]int, 0, len(n.subs))
	for id := range n.subs {
		ids = append(ids, id)
	}
	// map iteration order is random; restore subscription order
	sort.Ints(ids)
	cbs := make([]func(), len(ids))
	for i, id := range ids {
		cbs[i] = n.subs[id]
	}
	n.mu.Unlock()

	for _, cb := range cbs {
		cb()
	}
}

// Len returns the number of registered subscribers.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
