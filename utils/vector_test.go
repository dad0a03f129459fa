package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.V.RawVector().Data[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.V.RawVector().Data[N-1])
	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
		req = NewVector(50).Linspace(150, 250)
		assert.Equal(t, 150., req.AtVec(0))
		assert.Equal(t, 250., req.AtVec(49))
	}
	// Copy is independent of the receiver
	{
		a := NewVector(3, []float64{1, 2, 3})
		b := a.Copy()
		b.V.SetVec(0, 99)
		assert.Equal(t, 1., a.AtVec(0))
		assert.Equal(t, 99., b.AtVec(0))
	}
	// Apply, Min, Max
	{
		a := NewVector(4, []float64{-2, 1, -3, 2}).Apply(math.Abs)
		assert.Equal(t, []float64{2, 1, 3, 2}, a.DataP())
		assert.Equal(t, 1., a.Min())
		assert.Equal(t, 3., a.Max())
	}
	// Scale and Subtract chain in place
	{
		a := NewVector(3, []float64{1, 2, 3}).Scale(2)
		b := NewVector(3, []float64{1, 1, 1})
		assert.Equal(t, []float64{1, 3, 5}, a.Subtract(b).DataP())
	}
}
