// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build atomicx_emulated

package atomicx_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/rtq/atomicx"
)

// TestEmulatedAddIsSerialized drives many goroutines through Add
// concurrently and checks the final total is exact, which only holds if
// the critical-section spinlock genuinely serializes every read-modify-
// write against every other one.
func TestEmulatedAddIsSerialized(t *testing.T) {
	var c atomicx.Uint64
	const goroutines = 50
	const perGoroutine = 200

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				c.Add(1, atomicx.AcqRel)
			}
		}()
	}
	wg.Wait()

	want := uint64(goroutines * perGoroutine)
	if got := c.Load(atomicx.SeqCst); got != want {
		t.Fatalf("final total: got %d, want %d", got, want)
	}
}
