// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomicx provides a uniform, ordering-parameterized atomic contract
// — swap / fetch-add / fetch-or — over a small set of cells (Uint64,
// Uintptr, Bool), satisfied by one of two back-ends selected at compile
// time:
//
//   - Native RMW (the default build): each cell embeds an ordered atomic
//     cell from [code.hybscloud.com/atomix] and dispatches the requested
//     Ordering to the matching per-ordering atomix method. Hardware
//     read-modify-write is indivisible regardless of the requested
//     ordering, so this back-end's entire job is the dispatch table.
//
//   - Critical-section emulation (build tag atomicx_emulated): for targets
//     without a native RMW instruction (the motivating case is an
//     ARMv6-M / Cortex-M0 class part), a spinlock stands in for disabling
//     interrupts, and a plain load/compute/store sequence runs while it's
//     held.
//
// Selection is a build-time concern; callers see only the Ordering-
// parameterized Swap/Add/Or contract below.
package atomicx

// Ordering specifies the memory-ordering semantics requested of an atomic
// operation. The five values mirror the levels found in most systems
// languages' atomic libraries.
type Ordering uint8

const (
	// Relaxed imposes no ordering constraints beyond atomicity of the
	// individual operation.
	Relaxed Ordering = iota
	// Acquire prevents later memory operations from being reordered before
	// this one.
	Acquire
	// Release prevents earlier memory operations from being reordered
	// after this one.
	Release
	// AcqRel combines Acquire and Release.
	AcqRel
	// SeqCst additionally establishes a single total order over all
	// SeqCst operations.
	SeqCst
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "Relaxed"
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	case AcqRel:
		return "AcqRel"
	case SeqCst:
		return "SeqCst"
	default:
		return "Ordering(invalid)"
	}
}

// valid reports whether o is one of the five declared Ordering values.
func (o Ordering) valid() bool {
	return o <= SeqCst
}

// rmwOrdering decomposes a requested ordering into a load-ordering and a
// store-ordering, for back-ends (the critical-section emulation) that must
// implement an atomic read-modify-write as a separate load followed by a
// separate store. Panics on an invalid ordering: a fatal, programming-error
// class condition, never a runtime data value.
//
// Acquire-only decomposes to an acquire load plus a relaxed store, Release
// to a relaxed load plus a release store, and AcqRel to an acquire load
// plus a release store: each half carries only as much ordering as its
// direction needs, since the critical section lock already serializes the
// read-modify-write as a whole.
func rmwOrdering(o Ordering) (load, store Ordering) {
	switch o {
	case Relaxed:
		return Relaxed, Relaxed
	case Acquire:
		return Acquire, Relaxed
	case Release:
		return Relaxed, Release
	case AcqRel:
		return Acquire, Release
	case SeqCst:
		return SeqCst, SeqCst
	default:
		panic("atomicx: invalid ordering")
	}
}
