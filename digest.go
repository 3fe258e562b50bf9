package bitaddr

import (
	"github.com/dchest/siphash"
	"github.com/zeebo/xxh3"
)

const (
	k0 = 17697571051839533707
	k1 = 15128385881502100741
)

// Digest reduces a key to 64 bits. Any hash works; the package only consumes
// the resulting integer.
type Digest func(key []byte) uint64

// String hashes key without copying it.
func (d Digest) String(key string) uint64 { return d(toBytes(key)) }

// SipHash returns a SipHash-2-4 Digest keyed with k0 and k1.
func SipHash(k0, k1 uint64) Digest {
	return func(key []byte) uint64 {
		return siphash.Hash(k0, k1, key)
	}
}

// XXH3 returns a seeded XXH3-64 Digest.
func XXH3(seed uint64) Digest {
	return func(key []byte) uint64 {
		return xxh3.HashSeed(key, seed)
	}
}

// DefaultDigest is SipHash with fixed package keys.
var DefaultDigest = SipHash(k0, k1)

// Within reduces sum to a bit index inside an array of 1<<logWords words and
// resolves it. The reduction is a mask, so the array must be sized as a
// power of two number of words. If logWords+Shift covers all 64 bits the sum
// is used as is.
func (a Addressing) Within(sum uint64, logWords uint) Address {
	n := logWords + uint(a.Shift)
	if n < 64 {
		sum &= 1<<n - 1
	}
	return a.Resolve(sum)
}

// ResolveKey hashes key with d and resolves it within 1<<logWords words.
func (a Addressing) ResolveKey(d Digest, key []byte, logWords uint) Address {
	return a.Within(d(key), logWords)
}
