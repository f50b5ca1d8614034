// Package events provides the notification mechanism for scene-tree nodes.
//
// Emitters dispatch synchronously on the goroutine that calls Emit. The
// scene tree is a single-writer structure, so no locking is performed;
// listeners must not structurally mutate the tree that is notifying them.
package events

import "sync/atomic"

// Subscription represents an active listener registration.
type Subscription[T any] struct {
	emitter  *Emitter[T]
	fn       func(T)
	canceled atomic.Bool
}

// Cancel stops the listener from receiving further events.
// Canceling an already-canceled subscription is a no-op.
func (s *Subscription[T]) Cancel() {
	if s.canceled.CompareAndSwap(false, true) {
		s.emitter.remove(s)
	}
}

// IsCanceled returns true if this subscription has been canceled.
func (s *Subscription[T]) IsCanceled() bool {
	return s.canceled.Load()
}

// Emitter dispatches values of type T to subscribed listeners in
// subscription order.
//
// The zero value is ready to use.
type Emitter[T any] struct {
	subs []*Subscription[T]
}

// Subscribe registers a listener and returns its subscription handle.
func (e *Emitter[T]) Subscribe(fn func(T)) *Subscription[T] {
	sub := &Subscription[T]{emitter: e, fn: fn}
	e.subs = append(e.subs, sub)
	return sub
}

// Emit delivers ev to every active listener. The listener list is
// snapshotted first, so a listener may cancel itself (or others) during
// dispatch; listeners canceled mid-dispatch are skipped.
func (e *Emitter[T]) Emit(ev T) {
	if len(e.subs) == 0 {
		return
	}
	snapshot := make([]*Subscription[T], len(e.subs))
	copy(snapshot, e.subs)
	for _, sub := range snapshot {
		if !sub.canceled.Load() {
			sub.fn(ev)
		}
	}
}

// Len returns the number of active subscriptions.
func (e *Emitter[T]) Len() int {
	return len(e.subs)
}

func (e *Emitter[T]) remove(sub *Subscription[T]) {
	for i, s := range e.subs {
		if s == sub {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}
