// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtq

import (
	"context"
	"sync"

	"golang.org/x/sys/cpu"

	"code.hybscloud.com/rtq/internal/waitlist"
)

// Queue is a bounded FIFO of elements of type T with blocking, fair push
// and pop.
//
// Capacity is fixed at construction (New or Site.Build) and never
// resized. Any number of goroutines may call the Push/TryPush/Pop/TryPop
// methods concurrently; a single mutex serializes ring-state mutation —
// the Go stand-in for the original cooperative-executor design's "tasks
// don't preempt each other mid-operation" invariant.
//
// See the package doc for the blocking/cancellation contract and the
// dependency list.
type Queue[T any] struct {
	_ cpu.CacheLinePad

	mu          sync.Mutex
	storage     []T
	head        int
	tail        int
	pending     int
	pushWaiters waitlist.List
	popWaiters  waitlist.List

	_ cpu.CacheLinePad
}

// New creates a Queue with the given capacity (must be >= 1). Unlike the
// lock-free queue families this package's implementation is grounded on,
// capacity is not rounded to a power of two: the ring arithmetic here uses
// a conditional-reset index advance, which works for any modulus.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic("rtq: capacity must be >= 1")
	}
	return &Queue[T]{storage: make([]T, capacity)}
}

// Cap returns the queue's fixed capacity.
func (q *Queue[T]) Cap() int {
	return len(q.storage)
}

// Len returns the number of elements currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending
}

// IsEmpty reports whether the queue currently holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending == 0
}

// IsFull reports whether the queue is at capacity.
func (q *Queue[T]) IsFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending == len(q.storage)
}

// TryPush inserts v without blocking. It returns ErrFull, leaving v
// untouched, if the queue has no room.
func (q *Queue[T]) TryPush(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.tryPushLocked(v)
}

// tryPushLocked implements the non-blocking push algorithm. Caller must
// hold q.mu.
func (q *Queue[T]) tryPushLocked(v T) error {
	n := len(q.storage)
	if q.pending == n {
		return ErrFull
	}

	h := q.head
	q.storage[h] = v
	if h == n-1 {
		q.head = 0
	} else {
		q.head = h + 1
	}
	q.pending++

	// h equalling the (unchanged-by-push) tail means the queue was empty
	// immediately before this write.
	if h == q.tail {
		q.popWaiters.WakeOne()
	}
	return nil
}

// TryPop removes and returns the oldest element without blocking. It
// returns ErrEmpty and the zero value of T if the queue has nothing to
// give.
func (q *Queue[T]) TryPop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.tryPopLocked()
}

// tryPopLocked implements the non-blocking pop algorithm. Caller must
// hold q.mu.
func (q *Queue[T]) tryPopLocked() (T, error) {
	var zero T
	if q.pending == 0 {
		return zero, ErrEmpty
	}

	n := len(q.storage)
	t := q.tail
	v := q.storage[t]
	q.storage[t] = zero // don't keep a reference-typed element alive
	if t == n-1 {
		q.tail = 0
	} else {
		q.tail = t + 1
	}
	q.pending--

	// t equalling the (unchanged-by-pop) head means the queue was full
	// immediately before this read.
	if t == q.head {
		q.pushWaiters.WakeOne()
	}
	return v, nil
}

// Push inserts v, blocking until space is available or until ctx is
// cancelled. Blocked producers are woken in enrollment order, but a Push
// that finds room when it is called, or when it retries after a wake,
// takes that room without waiting for producers enrolled before it; a
// woken producer that finds no room re-enrolls at the tail. On
// cancellation, v is simply the caller's own copy to discard; the queue's
// ring state is unaffected, and Push returns ctx.Err().
func (q *Queue[T]) Push(ctx context.Context, v T) error {
	q.mu.Lock()
	if err := q.tryPushLocked(v); err == nil {
		q.mu.Unlock()
		return nil
	}
	node := q.pushWaiters.Enroll()
	q.mu.Unlock()

	for {
		select {
		case <-node.Ready():
			q.mu.Lock()
			if err := q.tryPushLocked(v); err == nil {
				q.mu.Unlock()
				return nil
			}
			// Another producer barged ahead between the wake and this
			// retry. Re-enroll at the tail and wait again, taking a new
			// place in FIFO order.
			node = q.pushWaiters.Enroll()
			q.mu.Unlock()
		case <-ctx.Done():
			q.mu.Lock()
			if wasWoken := q.pushWaiters.Remove(node); wasWoken {
				// The slot this node's wake described is still free;
				// forward the token so it isn't lost.
				q.pushWaiters.WakeOne()
			}
			q.mu.Unlock()
			return ctx.Err()
		}
	}
}

// Pop removes and returns the oldest element, blocking until one is
// available or until ctx is cancelled. Blocked consumers are woken in
// enrollment order, but a Pop that finds a value when it is called, or
// when it retries after a wake, takes it without waiting for consumers
// enrolled before it. On cancellation, no value is consumed, and Pop
// returns the zero value of T alongside ctx.Err().
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	q.mu.Lock()
	if v, err := q.tryPopLocked(); err == nil {
		q.mu.Unlock()
		return v, nil
	}
	node := q.popWaiters.Enroll()
	q.mu.Unlock()

	for {
		select {
		case <-node.Ready():
			q.mu.Lock()
			if v, err := q.tryPopLocked(); err == nil {
				q.mu.Unlock()
				return v, nil
			}
			node = q.popWaiters.Enroll()
			q.mu.Unlock()
		case <-ctx.Done():
			q.mu.Lock()
			if wasWoken := q.popWaiters.Remove(node); wasWoken {
				q.popWaiters.WakeOne()
			}
			q.mu.Unlock()
			var zero T
			return zero, ctx.Err()
		}
	}
}

// Close destructs every live element (passing it to cleanup, if non-nil,
// then resetting its slot to the zero value of T) and resets the queue to
// empty. It panics if any goroutine is currently blocked in Push or Pop:
// per the original design, a queue may not be destroyed while a waiter
// borrows it.
func (q *Queue[T]) Close(cleanup func(T)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.pushWaiters.Empty() || !q.popWaiters.Empty() {
		panic("rtq: Close called while a waiter is enrolled")
	}

	n := len(q.storage)
	t := q.tail
	for i := 0; i < q.pending; i++ {
		if cleanup != nil {
			cleanup(q.storage[t])
		}
		var zero T
		q.storage[t] = zero
		if t == n-1 {
			t = 0
		} else {
			t++
		}
	}
	q.pending = 0
	q.head = 0
	q.tail = 0
}

// Producer is the push-only view of a Queue.
type Producer[T any] interface {
	TryPush(v T) error
	Push(ctx context.Context, v T) error
}

// Consumer is the pop-only view of a Queue.
type Consumer[T any] interface {
	TryPop() (T, error)
	Pop(ctx context.Context) (T, error)
}

var (
	_ Producer[int] = (*Queue[int])(nil)
	_ Consumer[int] = (*Queue[int])(nil)
)
