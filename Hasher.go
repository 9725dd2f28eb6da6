package Go_Trees

import (
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

// rtSeed is used for keys that have no dedicated hash path. It's fixed for the lifetime of the process.
var rtSeed = maphash.MakeSeed()

// Hasher is a seed for the hash functions below. Different seeds give unrelated hash values for the same key.
// The zero value is a valid seed.
type Hasher uint64

// mix is the splitmix64 finalizer, it spreads every input bit over the whole output.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	return x ^ x>>31
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	return mix(xxhash.Sum64(b) ^ uint64(u))
}

// HashString directly hashes a string, it's faster than HashAny(string).
func (u Hasher) HashString(v string) uint64 {
	return mix(xxhash.Sum64String(v) ^ uint64(u))
}

// HashUint hashes v.
func (u Hasher) HashUint(v uint64) uint64 {
	return mix(v ^ uint64(u))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int64) uint64 {
	return u.HashUint(uint64(v))
}

// HashFloat hashes v. 0 and -0 hash the same since they are equal.
func (u Hasher) HashFloat(v float64) uint64 {
	if v == 0 {
		return u.HashUint(0)
	}
	return u.HashUint(math.Float64bits(v))
}

// HashAny hashes any comparable value. Common basic types are dispatched to the dedicated functions,
// everything else goes through maphash.Comparable, so like a builtin map it panics on
// interface values holding incomparable dynamic types.
func HashAny[K comparable](u Hasher, k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return u.HashString(v)
	case int:
		return u.HashInt(int64(v))
	case int64:
		return u.HashInt(v)
	case int32:
		return u.HashInt(int64(v))
	case uint:
		return u.HashUint(uint64(v))
	case uint64:
		return u.HashUint(v)
	case uint32:
		return u.HashUint(uint64(v))
	case uintptr:
		return u.HashUint(uint64(v))
	case float64:
		return u.HashFloat(v)
	}
	return u.HashUint(maphash.Comparable(rtSeed, k))
}

// HashFunc returns a hash function for K using seed u.
func HashFunc[K comparable](u Hasher) func(K) uint64 {
	return func(k K) uint64 {
		return HashAny(u, k)
	}
}
