// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtq

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull is returned by TryPush when the queue has no room for another
// element. It wraps [iox.ErrWouldBlock] for ecosystem consistency: callers
// that already check errors.Is(err, iox.ErrWouldBlock) elsewhere in a
// codebase built on code.hybscloud.com libraries don't need a special case
// for rtq.
//
// ErrFull is a control flow signal, not a failure. Prefer Push (which blocks
// until room is available or its context is cancelled) unless you have a
// specific reason to poll.
var ErrFull = fmt.Errorf("rtq: queue is full: %w", iox.ErrWouldBlock)

// ErrEmpty is returned by TryPop when the queue has no element to remove.
// It wraps [iox.ErrWouldBlock], symmetrically with ErrFull.
var ErrEmpty = fmt.Errorf("rtq: queue is empty: %w", iox.ErrWouldBlock)

// IsWouldBlock reports whether err indicates a non-blocking operation could
// not proceed immediately (ErrFull or ErrEmpty, or anything else wrapping
// [iox.ErrWouldBlock]). Delegates to [iox.IsWouldBlock] for wrapped-error
// support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrFull, or ErrEmpty. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
