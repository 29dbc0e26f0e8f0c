package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Rng is the world's single random stream. A non-zero seed gives a
// deterministic replayable shift; zero seeds from the OS. It is only ever
// used under the world lock, so the unlocked math/rand source is fine.
type Rng struct {
	seed int64
	r    *rand.Rand
}

// NewRng builds the stream. Seed zero draws a random seed so every shift
// differs; Reseed keeps whichever behavior was chosen.
func NewRng(seed int64) *Rng {
	g := &Rng{seed: seed}
	g.Reseed()
	return g
}

// Reseed restarts the stream. Deterministic streams restart from their
// configured seed; non-deterministic ones draw fresh entropy.
func (g *Rng) Reseed() {
	seed := g.seed
	if seed == 0 {
		var buf [8]byte
		if _, err := crand.Read(buf[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(buf[:]))
		} else {
			seed = 1
		}
	}
	g.r = rand.New(rand.NewSource(seed))
}

// Percent returns a uniform draw in [0, 100).
func (g *Rng) Percent() int {
	return g.r.Intn(100)
}

// Intn returns a uniform draw in [0, n).
func (g *Rng) Intn(n int) int {
	return g.r.Intn(n)
}

// Between returns a uniform draw in [lo, hi] inclusive.
func (g *Rng) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}
