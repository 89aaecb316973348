package password

import "runtime"

// wipeHook, when non-nil, observes every buffer immediately after it has
// been zeroed and before it is released. Used by tests to verify the
// wipe-before-release property; never set outside of tests.
var wipeHook func(b []byte)

// wipe overwrites b with zero bytes. The function is marked noinline and
// the buffer is pinned with KeepAlive so the stores cannot be removed as
// dead by the compiler; zeroing discarded buffers is the whole point of
// this package, so elision here would be a correctness bug.
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
	if wipeHook != nil {
		wipeHook(b)
	}
}

// alloc returns a zeroed buffer for a logical size of n: n content bytes
// plus the terminator. Allocation is always exact; no capacity slack ever
// exists to retain stale secret bytes.
func alloc(n int) []byte {
	return make([]byte, n+1)
}
