package engine

import "math/rand"

// countingSource wraps a rand.Source and counts every value drawn from it.
// Counting at the source keeps the position exact even when a single Intn
// call draws more than once under rejection sampling.
type countingSource struct {
	src   rand.Source
	draws int64
}

func (s *countingSource) Int63() int64 {
	s.draws++
	return s.src.Int63()
}

func (s *countingSource) Seed(seed int64) {
	s.src.Seed(seed)
}

// RNG is a deterministic random source with draw-position tracking,
// enabling exact save/restore of the stream.
type RNG struct {
	seed int64
	cs   *countingSource
	rnd  *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	cs := &countingSource{src: rand.NewSource(seed)}
	return &RNG{seed: seed, cs: cs, rnd: rand.New(cs)}
}

// Seed returns the seed this RNG was created from.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rnd.Intn(n)
}

// IntRange returns a random integer in [min, max], both ends inclusive.
// min must be <= max.
func (r *RNG) IntRange(min, max int) int {
	return min + r.rnd.Intn(max-min+1)
}

// Position returns the number of source values drawn since creation.
func (r *RNG) Position() int64 {
	return r.cs.draws
}

// RestoreRNG creates an RNG and advances its source to the given position.
// This reproduces the exact RNG state for save/load.
func RestoreRNG(seed int64, position int64) *RNG {
	r := NewRNG(seed)
	for r.cs.draws < position {
		r.rnd.Int63()
	}
	return r
}
