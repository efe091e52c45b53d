// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicx_test

import (
	"testing"

	"code.hybscloud.com/rtq/atomicx"
)

func TestOrderingString(t *testing.T) {
	cases := []struct {
		o    atomicx.Ordering
		want string
	}{
		{atomicx.Relaxed, "Relaxed"},
		{atomicx.Acquire, "Acquire"},
		{atomicx.Release, "Release"},
		{atomicx.AcqRel, "AcqRel"},
		{atomicx.SeqCst, "SeqCst"},
	}
	for _, c := range cases {
		if got := c.o.String(); got != c.want {
			t.Errorf("%d.String(): got %q, want %q", c.o, got, c.want)
		}
	}

	invalid := atomicx.SeqCst + 1
	if got := invalid.String(); got != "Ordering(invalid)" {
		t.Errorf("invalid.String(): got %q, want %q", got, "Ordering(invalid)")
	}
}

func TestBoolSwapRoundTrip(t *testing.T) {
	var b atomicx.Bool
	if old := b.Swap(true, atomicx.SeqCst); old != false {
		t.Fatalf("first Swap: got old=%v, want false", old)
	}
	if old := b.Swap(false, atomicx.SeqCst); old != true {
		t.Fatalf("second Swap: got old=%v, want true", old)
	}
}

func TestUint64LoadStoreSwap(t *testing.T) {
	var c atomicx.Uint64
	c.Store(7, atomicx.Relaxed)
	if got := c.Load(atomicx.Relaxed); got != 7 {
		t.Fatalf("Load: got %d, want 7", got)
	}
	if old := c.Swap(42, atomicx.SeqCst); old != 7 {
		t.Fatalf("Swap: got old=%d, want 7", old)
	}
	if got := c.Load(atomicx.Acquire); got != 42 {
		t.Fatalf("Load after Swap: got %d, want 42", got)
	}
}

func TestUint64AddAndOr(t *testing.T) {
	var c atomicx.Uint64
	c.Store(10, atomicx.Relaxed)
	if old := c.Add(5, atomicx.AcqRel); old != 10 {
		t.Fatalf("Add: got old=%d, want 10", old)
	}
	if got := c.Load(atomicx.Relaxed); got != 15 {
		t.Fatalf("Load after Add: got %d, want 15", got)
	}

	c.Store(0b0100, atomicx.Relaxed)
	if old := c.Or(0b0011, atomicx.SeqCst); old != 0b0100 {
		t.Fatalf("Or: got old=%b, want %b", old, 0b0100)
	}
	if got := c.Load(atomicx.Relaxed); got != 0b0111 {
		t.Fatalf("Load after Or: got %b, want %b", got, 0b0111)
	}
}

func TestInvalidOrderingPanics(t *testing.T) {
	invalid := atomicx.SeqCst + 1

	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: want panic, got none", name)
			}
		}()
		fn()
	}

	var u atomicx.Uint64
	mustPanic("Uint64.Load", func() { u.Load(invalid) })
	mustPanic("Uint64.Store", func() { u.Store(1, invalid) })
	mustPanic("Uint64.Swap", func() { u.Swap(1, invalid) })
	mustPanic("Uint64.Add", func() { u.Add(1, invalid) })
	mustPanic("Uint64.Or", func() { u.Or(1, invalid) })

	var b atomicx.Bool
	mustPanic("Bool.Swap", func() { b.Swap(true, invalid) })
}

func TestUintptrLoadStoreSwapAdd(t *testing.T) {
	var c atomicx.Uintptr
	c.Store(3, atomicx.Release)
	if got := c.Load(atomicx.Acquire); got != 3 {
		t.Fatalf("Load: got %d, want 3", got)
	}
	if old := c.Swap(9, atomicx.SeqCst); old != 3 {
		t.Fatalf("Swap: got old=%d, want 3", old)
	}
	if old := c.Add(1, atomicx.Relaxed); old != 9 {
		t.Fatalf("Add: got old=%d, want 9", old)
	}
	if got := c.Load(atomicx.Relaxed); got != 10 {
		t.Fatalf("Load after Add: got %d, want 10", got)
	}
}
