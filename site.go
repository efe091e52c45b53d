// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtq

import "code.hybscloud.com/rtq/atomicx"

// Site implements the "static-scoped" construction idiom: a package-level
// var declared once, whose Build method must be invoked exactly once at
// runtime (typically from an init path reached once, e.g. a driver's
// setup routine). A second call to Build on the same Site is a fatal
// programming error and panics immediately, before touching the would-be
// second queue; the first-produced *Queue[T] remains valid and
// unaffected.
//
// The zero value of Site is ready to use:
//
//	var requestQueue rtq.Site[Request]
//
//	func setup() *rtq.Queue[Request] {
//	    return requestQueue.Build(32)
//	}
type Site[T any] struct {
	built atomicx.Bool
}

// Build constructs the queue this Site guards. It panics if called more
// than once on the same Site value.
//
// The guard uses a single SeqCst swap on the atomic polyfill — the same
// one-shot pattern the original static-queue macro used (INIT.swap(true,
// SeqCst)) to detect re-entry at a construction site.
func (s *Site[T]) Build(capacity int) *Queue[T] {
	if s.built.Swap(true, atomicx.SeqCst) {
		panic("rtq: Site already built")
	}
	return New[T](capacity)
}
