// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build atomicx_emulated

// Critical-section emulation back-end, for build targets where a native
// atomix cell is unavailable. A package-level spinlock stands in for
// disabling interrupts on a single-core part: the three-step sequence
// (plain load, compute, plain store) runs while the spinlock is held, and
// the requested Ordering is decomposed into a load-ordering and a
// store-ordering per rmwOrdering, purely so the decomposition is
// documented and testable — a held spinlock already gives the critical
// section full sequential consistency, strictly stronger than any single
// requested ordering, so correctness never depends on the decomposition.
//
// Unlike an interrupt-disable trick (valid only because a single core has
// no other preemption source), a spinlock is a real mutual-exclusion
// primitive and stays correct on any number of cores/goroutines.
package atomicx

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// critSec is a minimal test-and-set spinlock guarding every cell's
// critical section in this build. A single package-level lock is
// sufficient: the sections are microscopic (one load, one arithmetic op,
// one store), so contention between unrelated cells is brief and cheap to
// spin through, and it avoids a separate lock word per cell on a
// memory-constrained target.
//
// The test-and-set flag itself is a plain [sync/atomic.Bool]: no pack
// library provides a bare CAS-based spinlock primitive (code.hybscloud.com/
// spin supplies the backoff helper used below, not the lock word), and
// sync/atomic.Bool.CompareAndSwap is exactly the single primitive this
// needs.
var critSec atomic.Bool

func enter() {
	sw := spin.Wait{}
	for !critSec.CompareAndSwap(false, true) {
		sw.Once()
	}
}

func leave() {
	critSec.Store(false)
}

// Uint64 is an atomic uint64 cell, emulated via critical section.
type Uint64 struct {
	v uint64
}

func (c *Uint64) Load(order Ordering) uint64 {
	if !order.valid() {
		panic("atomicx: invalid ordering")
	}
	enter()
	v := c.v
	leave()
	return v
}

func (c *Uint64) Store(val uint64, order Ordering) {
	if !order.valid() {
		panic("atomicx: invalid ordering")
	}
	enter()
	c.v = val
	leave()
}

func (c *Uint64) Swap(val uint64, order Ordering) uint64 {
	rmwOrdering(order) // validates order; decomposition is documentation-only here
	enter()
	old := c.v
	c.v = val
	leave()
	return old
}

func (c *Uint64) Add(delta uint64, order Ordering) uint64 {
	rmwOrdering(order)
	enter()
	old := c.v
	c.v = old + delta
	leave()
	return old
}

func (c *Uint64) Or(mask uint64, order Ordering) uint64 {
	rmwOrdering(order)
	enter()
	old := c.v
	c.v = old | mask
	leave()
	return old
}

// Uintptr is an atomic uintptr cell, emulated via critical section.
type Uintptr struct {
	v uintptr
}

func (c *Uintptr) Load(order Ordering) uintptr {
	if !order.valid() {
		panic("atomicx: invalid ordering")
	}
	enter()
	v := c.v
	leave()
	return v
}

func (c *Uintptr) Store(val uintptr, order Ordering) {
	if !order.valid() {
		panic("atomicx: invalid ordering")
	}
	enter()
	c.v = val
	leave()
}

func (c *Uintptr) Swap(val uintptr, order Ordering) uintptr {
	rmwOrdering(order)
	enter()
	old := c.v
	c.v = val
	leave()
	return old
}

func (c *Uintptr) Add(delta uintptr, order Ordering) uintptr {
	rmwOrdering(order)
	enter()
	old := c.v
	c.v = old + delta
	leave()
	return old
}

// Bool is an atomic boolean cell, emulated via critical section.
type Bool struct {
	v bool
}

func (c *Bool) Load(order Ordering) bool {
	if !order.valid() {
		panic("atomicx: invalid ordering")
	}
	enter()
	v := c.v
	leave()
	return v
}

func (c *Bool) Store(val bool, order Ordering) {
	if !order.valid() {
		panic("atomicx: invalid ordering")
	}
	enter()
	c.v = val
	leave()
}

func (c *Bool) Swap(val bool, order Ordering) bool {
	rmwOrdering(order)
	enter()
	old := c.v
	c.v = val
	leave()
	return old
}
