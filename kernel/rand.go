package kernel

import "math/rand"

// RandomBit is a source of coin flips.
type RandomBit interface {
	Bit() bool
}

type RandSource struct {
	r *rand.Rand
}

func NewRandSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewSource(seed))}
}

func (s *RandSource) Bit() bool { return s.r.Intn(2) == 1 }
