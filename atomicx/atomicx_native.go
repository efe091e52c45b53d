// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !atomicx_emulated

package atomicx

import "code.hybscloud.com/atomix"

// Uint64 is an atomic uint64 cell. The zero value is a cell holding 0,
// exactly like a zero-value [code.hybscloud.com/atomix.Uint64] — no
// constructor is required.
type Uint64 struct {
	v atomix.Uint64
}

// Load atomically reads the cell's value.
func (c *Uint64) Load(order Ordering) uint64 {
	switch order {
	case Relaxed:
		return c.v.LoadRelaxed()
	case Acquire, AcqRel:
		return c.v.LoadAcquire()
	case Release:
		return c.v.LoadRelaxed()
	case SeqCst:
		return c.v.LoadSeqCst()
	default:
		panic("atomicx: invalid ordering")
	}
}

// Store atomically writes val into the cell.
func (c *Uint64) Store(val uint64, order Ordering) {
	switch order {
	case Relaxed:
		c.v.StoreRelaxed(val)
	case Release, AcqRel:
		c.v.StoreRelease(val)
	case Acquire:
		c.v.StoreRelaxed(val)
	case SeqCst:
		c.v.StoreSeqCst(val)
	default:
		panic("atomicx: invalid ordering")
	}
}

// Swap atomically replaces the cell's value with val, returning the
// previous value. Forwarded directly to the hardware RMW instruction
// underlying atomix — indivisible regardless of which ordering was
// requested.
func (c *Uint64) Swap(val uint64, order Ordering) uint64 {
	switch order {
	case Relaxed:
		return c.v.SwapRelaxed(val)
	case Acquire:
		return c.v.SwapAcquire(val)
	case Release:
		return c.v.SwapRelease(val)
	case AcqRel:
		return c.v.SwapAcqRel(val)
	case SeqCst:
		return c.v.SwapSeqCst(val)
	default:
		panic("atomicx: invalid ordering")
	}
}

// Add atomically adds delta to the cell's value (wrapping), returning the
// previous value.
func (c *Uint64) Add(delta uint64, order Ordering) uint64 {
	switch order {
	case Relaxed:
		return c.v.AddRelaxed(delta)
	case Acquire:
		return c.v.AddAcquire(delta)
	case Release:
		return c.v.AddRelease(delta)
	case AcqRel:
		return c.v.AddAcqRel(delta)
	case SeqCst:
		return c.v.AddSeqCst(delta)
	default:
		panic("atomicx: invalid ordering")
	}
}

// Or atomically ORs mask into the cell's value, returning the previous
// value.
func (c *Uint64) Or(mask uint64, order Ordering) uint64 {
	switch order {
	case Relaxed:
		return c.v.OrRelaxed(mask)
	case Acquire:
		return c.v.OrAcquire(mask)
	case Release:
		return c.v.OrRelease(mask)
	case AcqRel:
		return c.v.OrAcqRel(mask)
	case SeqCst:
		return c.v.OrSeqCst(mask)
	default:
		panic("atomicx: invalid ordering")
	}
}

// Uintptr is an atomic uintptr cell, for indices/handles that are sized to
// the native pointer width. Same contract as Uint64, except that Uintptr
// has no Or.
type Uintptr struct {
	v atomix.Uintptr
}

// Load atomically reads the cell's value.
func (c *Uintptr) Load(order Ordering) uintptr {
	switch order {
	case Relaxed:
		return c.v.LoadRelaxed()
	case Acquire, AcqRel:
		return c.v.LoadAcquire()
	case Release:
		return c.v.LoadRelaxed()
	case SeqCst:
		return c.v.LoadSeqCst()
	default:
		panic("atomicx: invalid ordering")
	}
}

// Store atomically writes val into the cell.
func (c *Uintptr) Store(val uintptr, order Ordering) {
	switch order {
	case Relaxed:
		c.v.StoreRelaxed(val)
	case Release, AcqRel:
		c.v.StoreRelease(val)
	case Acquire:
		c.v.StoreRelaxed(val)
	case SeqCst:
		c.v.StoreSeqCst(val)
	default:
		panic("atomicx: invalid ordering")
	}
}

// Swap atomically replaces the cell's value with val, returning the
// previous value.
func (c *Uintptr) Swap(val uintptr, order Ordering) uintptr {
	switch order {
	case Relaxed:
		return c.v.SwapRelaxed(val)
	case Acquire:
		return c.v.SwapAcquire(val)
	case Release:
		return c.v.SwapRelease(val)
	case AcqRel:
		return c.v.SwapAcqRel(val)
	case SeqCst:
		return c.v.SwapSeqCst(val)
	default:
		panic("atomicx: invalid ordering")
	}
}

// Add atomically adds delta to the cell's value (wrapping), returning the
// previous value.
func (c *Uintptr) Add(delta uintptr, order Ordering) uintptr {
	switch order {
	case Relaxed:
		return c.v.AddRelaxed(delta)
	case Acquire:
		return c.v.AddAcquire(delta)
	case Release:
		return c.v.AddRelease(delta)
	case AcqRel:
		return c.v.AddAcqRel(delta)
	case SeqCst:
		return c.v.AddSeqCst(delta)
	default:
		panic("atomicx: invalid ordering")
	}
}

// Bool is an atomic boolean cell. Its main use in this module is the
// one-shot guard for [code.hybscloud.com/rtq.Site].
type Bool struct {
	v atomix.Bool
}

// Load atomically reads the cell's value.
func (c *Bool) Load(order Ordering) bool {
	switch order {
	case Relaxed:
		return c.v.LoadRelaxed()
	case Acquire, AcqRel:
		return c.v.LoadAcquire()
	case Release:
		return c.v.LoadRelaxed()
	case SeqCst:
		return c.v.LoadSeqCst()
	default:
		panic("atomicx: invalid ordering")
	}
}

// Store atomically writes val into the cell.
func (c *Bool) Store(val bool, order Ordering) {
	switch order {
	case Relaxed:
		c.v.StoreRelaxed(val)
	case Release, AcqRel:
		c.v.StoreRelease(val)
	case Acquire:
		c.v.StoreRelaxed(val)
	case SeqCst:
		c.v.StoreSeqCst(val)
	default:
		panic("atomicx: invalid ordering")
	}
}

// Swap atomically replaces the cell's value with val, returning the
// previous value. Used by [code.hybscloud.com/rtq.Site] to detect
// re-entrant construction: the first caller observes false (wins), any
// later caller observes true (loses, and must treat that as fatal).
func (c *Bool) Swap(val bool, order Ordering) bool {
	switch order {
	case Relaxed:
		return c.v.SwapRelaxed(val)
	case Acquire:
		return c.v.SwapAcquire(val)
	case Release:
		return c.v.SwapRelease(val)
	case AcqRel:
		return c.v.SwapAcqRel(val)
	case SeqCst:
		return c.v.SwapSeqCst(val)
	default:
		panic("atomicx: invalid ordering")
	}
}
