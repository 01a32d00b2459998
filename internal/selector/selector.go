// Package selector picks pool indices deterministically from a day offset,
// a tone, a regeneration seed and a slot discriminator.
package selector

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Slot distinguishes independent selections made for the same day.
type Slot uint64

const (
	SlotPhilosopher Slot = iota + 1
	SlotTheme
	SlotAngle
	SlotVideoTemplate
	SlotCarouselTemplate
	SlotHashtag
	SlotPhrasing
)

// None is passed as the previous index when there is no previous day.
const None = -1

// Selector is an immutable seeded index function. The zero value is usable
// and equivalent to New("", 0).
type Selector struct {
	toneHash uint64
	seed     uint64
}

// New creates a Selector for a tone label and regeneration seed.
func New(tone string, seed int64) Selector {
	return Selector{
		toneHash: xxhash.Sum64String(tone),
		seed:     uint64(seed),
	}
}

// Index maps (day, slot, sub) to an index in [0, n). It panics if n <= 0.
func (s Selector) Index(day int, slot Slot, sub int, n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("selector: cannot pick from pool of size %d (slot %d)", n, slot))
	}
	return int(s.hash(day, slot, sub) % uint64(n))
}

// Pick is Index with adjacent-day collision avoidance: when the candidate
// equals prev it moves to the next index modulo n. Pools of size 1 always
// return 0.
func (s Selector) Pick(day int, slot Slot, sub int, n int, prev int) int {
	idx := s.Index(day, slot, sub, n)
	if n > 1 && idx == prev {
		idx = (idx + 1) % n
	}
	return idx
}

// Distinct returns the first index, scanning forward from Index, that is not
// in taken. If every index is taken the plain Index result is returned.
func (s Selector) Distinct(day int, slot Slot, sub int, n int, taken ...int) int {
	start := s.Index(day, slot, sub, n)
	for step := 0; step < n; step++ {
		idx := (start + step) % n
		if !contains(taken, idx) {
			return idx
		}
	}
	return start
}

func (s Selector) hash(day int, slot Slot, sub int) uint64 {
	h := mix(s.seed ^ 0x5851f42d4c957f2d)
	h = mix(h ^ s.toneHash)
	h = mix(h ^ uint64(int64(day)))
	h = mix(h ^ (uint64(slot)<<32 | uint64(uint32(sub))))
	return h
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
