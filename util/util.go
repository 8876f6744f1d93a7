package util

import "sync/atomic"

func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

type AtomicBool struct {
	flag uint32
}

func NewAtomicBool(initVal bool) *AtomicBool {
	if initVal {
		return &AtomicBool{flag: 1}
	} else {
		return &AtomicBool{flag: 0}
	}
}

func (b *AtomicBool) Get() bool {
	return atomic.LoadUint32(&b.flag) != 0
}

func (b *AtomicBool) Set(newVal bool) {
	if newVal {
		atomic.StoreUint32(&b.flag, 1)
	} else {
		atomic.StoreUint32(&b.flag, 0)
	}
}
