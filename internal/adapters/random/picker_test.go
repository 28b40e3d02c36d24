package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickerIsDeterministic(t *testing.T) {
	a, b := NewPicker(42), NewPicker(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(3), b.Intn(3))
	}
}

func TestPickerRange(t *testing.T) {
	p := NewPicker(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := p.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 0, p.Intn(0))
}

func TestFixed(t *testing.T) {
	assert.Equal(t, 2, Fixed(2).Intn(3))
	assert.Equal(t, 1, Fixed(4).Intn(3))
	assert.Equal(t, 2, Fixed(-1).Intn(3))
}
