// Package random supplies ports.Picker implementations for phrase selection.
package random

import (
	"math/rand/v2"
	"sync"
)

// Picker draws from a seeded PCG stream; equal seeds give equal sequences.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPicker(seed uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *Picker) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}

// Fixed always picks the same index, wrapped into range.
type Fixed int

func (f Fixed) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}
