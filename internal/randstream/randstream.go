// Package randstream constructs independent per-partition random streams.
//
// Every parallel region derives one generator per partition from a single
// call-level seed and the partition index. The derivation is a pure function
// with no shared mutable state, so concurrent workers never touch a global
// entropy source inside the parallel region. Two partitions of the same call
// receive independent streams; the same (callSeed, partition) pair always
// yields the same stream.
package randstream

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/spaolacci/murmur3"
)

// CallSeed draws a fresh call-level seed. Called once per sampling call,
// before any parallel region starts.
func CallSeed() uint64 {
	var buf [8]byte
	_, _ = crand.Read(buf[:]) // crypto/rand.Read failure is a fatal system issue
	return binary.LittleEndian.Uint64(buf[:])
}

// New returns a PCG generator exclusively owned by one partition for the
// duration of one call. The two 64-bit PCG seeds come from a 128-bit murmur3
// mix of the call seed and the partition index, so nearby partition indices
// still map to unrelated streams.
func New(callSeed uint64, partition int) *rand.Rand {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], callSeed)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(partition))
	s1, s2 := murmur3.Sum128(buf[:])
	return rand.New(rand.NewPCG(s1, s2))
}
