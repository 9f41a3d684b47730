package slot

import (
	"math/rand/v2"
	"sync"
)

type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// NewRandSource returns a deterministic source for a non-zero seed and the
// runtime's global source otherwise.
func NewRandSource(seed uint64) RandSource {
	if seed == 0 {
		return globalRand{}
	}
	return &seededRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

type seededRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seededRand) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seededRand) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
