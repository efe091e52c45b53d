// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package rtq

// RaceEnabled is true when the race detector is active. Queue's own ring
// state is fully mutex-guarded, so it has none of the lock-free
// cross-variable-ordering false positives that lock-free queue families
// need to suppress. The one surviving use of this flag is the
// concurrent-Site.Build test: two goroutines racing Site.Build observe
// atomicx's one-shot guard, and atomicx's native back-end forwards
// straight through to code.hybscloud.com/atomix, whose ordered operations
// the race detector instruments as plain memory accesses rather than
// synchronization — so that test is skipped under -race.
const RaceEnabled = true
