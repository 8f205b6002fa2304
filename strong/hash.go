package strong

import (
	"hash/maphash"
	"time"
)

// seed is fixed for the process, so hashes are stable within it and
// deliberately not across processes.
var seed = maphash.MakeSeed()

func hashString(s string) uint64 {
	return maphash.String(seed, s)
}

func hashBytes(b []byte) uint64 {
	return maphash.Bytes(seed, b)
}

func hashComparable[T comparable](v T) uint64 {
	return maphash.Comparable(seed, v)
}

func hashInstant(t time.Time) uint64 {
	return hashComparable([2]int64{t.Unix(), int64(t.Nanosecond())})
}
