// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rtq provides a bounded, blocking FIFO queue for passing values
// between goroutines with fair wait lists and cancellable push/pop.
//
// rtq grew out of the inter-task queue of a cooperative executor for
// deeply embedded microcontrollers: the ring-buffer data path and the
// wait-list protocol are the same shape, translated onto goroutines and
// context.Context instead of a cooperative scheduler's tasks and futures.
// Where that original needed pinning and raw pointers to manage a
// self-referential storage pointer, this package just indexes a slice —
// Go's memory model and garbage collector make the pinning machinery
// unnecessary.
//
// # Quick Start
//
//	q := rtq.New[Job](32)
//
//	// Producer
//	go func() {
//	    for job := range incoming {
//	        if err := q.Push(ctx, job); err != nil {
//	            return // ctx cancelled
//	        }
//	    }
//	}()
//
//	// Consumer
//	go func() {
//	    for {
//	        job, err := q.Pop(ctx)
//	        if err != nil {
//	            return // ctx cancelled
//	        }
//	        job.Run()
//	    }
//	}()
//
// # Blocking vs. Non-blocking
//
// Push and Pop block until the operation can complete or their
// context.Context is cancelled. TryPush and TryPop never block: they
// return ErrFull/ErrEmpty immediately if the queue can't satisfy the
// request.
//
//	if err := q.TryPush(job); err != nil {
//	    // queue full — handle backpressure however fits the caller
//	}
//
//	job, err := q.TryPop()
//	if rtq.IsWouldBlock(err) {
//	    // queue empty
//	}
//
// # Fairness and Cancellation
//
// Both wait lists (one for blocked producers, one for blocked consumers)
// serve strictly in arrival order: the goroutine that called Push/Pop
// first is woken first. A wake is a single-use token tied to a state
// transition (empty→non-empty for consumers, full→non-full for
// producers), not a poll, so producers and consumers can't starve each
// other as long as the opposing side keeps making progress.
//
// Cancelling ctx while blocked in Push or Pop removes the caller from its
// wait list in O(1) and returns ctx.Err(); it never mutates the queue's
// ring state. If the caller's wait-list node had already been woken (a
// slot or value had been reserved for it) when the cancellation raced it,
// the wake is forwarded to the next waiter in the same list so the token
// is never lost — see internal/waitlist for the exact protocol.
//
// # Static-Scoped Construction
//
// For the embedded idiom of a queue declared once at package scope and
// built exactly once at runtime, use Site:
//
//	var jobQueue rtq.Site[Job]
//
//	func setup() *rtq.Queue[Job] {
//	    return jobQueue.Build(32) // panics if called twice
//	}
//
// # Thread Safety
//
// All Queue methods are safe for concurrent use by any number of
// goroutines in any producer/consumer role — there is no SPSC/MPSC/SPMC
// distinction to get wrong, unlike a lock-free queue family.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors
// (ErrFull/ErrEmpty wrap iox.ErrWouldBlock), [code.hybscloud.com/atomix]
// as the native back-end of its own atomicx polyfill (used by Site's
// one-shot construction guard), [code.hybscloud.com/spin] as the
// busy-wait primitive behind atomicx's critical-section emulation
// back-end, and golang.org/x/sys/cpu for cache-line padding on the
// queue's hot fields.
package rtq
