package components

import (
	"math"
	"math/rand/v2"
)

// Rand is the random source used for random steps. *rand.Rand satisfies it.
type Rand interface {
	Uint64() uint64
}

type globalRand struct{}

func (globalRand) Uint64() uint64 { return rand.Uint64() }

// State is the animation position of one throbber. The zero value starts at
// position 0 and draws random steps from the process-wide source.
//
// State is not safe for concurrent use; the owner advances it once per tick
// and hands it to RenderStateful once per frame.
type State struct {
	index int
	rng   Rand
}

// NewState returns a state at position 0 using rng for random steps. A nil
// rng selects the process-wide source.
func NewState(rng Rand) *State {
	return &State{rng: rng}
}

// Index returns the current position.
func (s *State) Index() int {
	return s.index
}

// SetIndex moves the state to index.
func (s *State) SetIndex(index int) {
	s.index = index
}

// Advance moves to the next frame.
func (s *State) Advance() {
	s.Step(1)
}

// Step moves the position by amount, saturating at the bounds of int.
// A zero amount jumps to a uniformly random position instead.
func (s *State) Step(amount int) {
	if amount == 0 {
		s.index = int(s.random().Uint64())
		return
	}
	s.index = saturatingAdd(s.index, amount)
}

// Normalize folds the position into [0, frameCount). Negative positions wrap
// to the tail, so -1 becomes frameCount-1. A frameCount of zero or less
// leaves the position untouched.
func (s *State) Normalize(frameCount int) {
	if frameCount <= 0 {
		return
	}
	r := s.index % frameCount
	if r < 0 {
		r += frameCount
	}
	s.index = r
}

func (s *State) random() Rand {
	if s.rng == nil {
		return globalRand{}
	}
	return s.rng
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}
