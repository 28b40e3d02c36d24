package astro

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIndex(t *testing.T) {
	tests := []struct {
		lon  float64
		want int
	}{
		{0, 0},
		{29.999, 0},
		{30, 1},
		{254.9995, 8},
		{359.99, 11},
		{360, 0},
		{-0.5, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SignIndex(tt.lon), "SignIndex(%v)", tt.lon)
	}
}

func TestMansion(t *testing.T) {
	tests := []struct {
		lon       float64
		wantIndex int
		wantPada  int
	}{
		{0, 0, 1},
		{3.4, 0, 2},
		{13.333, 0, 4},
		{MansionSpan, 1, 1},
		{199.4146, 14, 4},
		{359.999, 26, 4},
	}

	for _, tt := range tests {
		idx, pada := Mansion(tt.lon)
		assert.Equal(t, tt.wantIndex, idx, "index for %v", tt.lon)
		assert.Equal(t, tt.wantPada, pada, "pada for %v", tt.lon)
	}
}

func TestMansionBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for i := 0; i < 50000; i++ {
		lon := rng.Float64() * 360
		idx, pada := Mansion(lon)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, Mansions)
		require.GreaterOrEqual(t, pada, 1)
		require.LessOrEqual(t, pada, Padas)

		sign := SignIndex(lon)
		require.GreaterOrEqual(t, sign, 0)
		require.Less(t, sign, Signs)
	}
}

func TestWaxing(t *testing.T) {
	assert.True(t, Waxing(10, 350))
	assert.False(t, Waxing(350, 10))
	assert.False(t, Waxing(180, 0))
	assert.True(t, Waxing(179.9, 0))
	assert.InDelta(t, 304.4, Elongation(223.27, 278.87), 1e-6)
}
