package runtime

import (
	_ "unsafe" // for go:linkname
)

// Uint32 returns a fast random uint32 value.
//
//go:linkname Uint32 runtime.fastrand
func Uint32() uint32

// Uint32n returns a fast random uint32 value in [0, n).
//
//go:linkname Uint32n runtime.fastrandn
func Uint32n(n uint32) uint32

// Uint64 returns a fast random uint64 value.
func Uint64() uint64 {
	v := uint64(Uint32())
	return v<<32 | uint64(Uint32())
}

// Int63n returns a fast random value in [0, n). It returns 0 when n <= 0.
func Int63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if n <= 1<<32-1 {
		return int64(Uint32n(uint32(n)))
	}
	return int64(Uint64() & (1<<63 - 1) % uint64(n))
}
