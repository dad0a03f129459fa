package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// MulVec
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		v := NewVector(3, []float64{1, 1, 1})
		R := M.MulVec(v)
		assert.Equal(t, []float64{6, 15}, R.DataP())
	}
	// Mul
	{
		M := NewMatrix(2, 2, []float64{
			1, 0,
			0, 2,
		})
		A := NewMatrix(2, 2, []float64{
			3, 4,
			5, 6,
		})
		assert.Equal(t, []float64{3, 4, 10, 12}, M.Mul(A).Data())
	}
	// Row copies out of the receiver
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		r := M.Row(1)
		r.V.SetVec(0, 99)
		assert.Equal(t, 4., M.At(1, 0))
		assert.Equal(t, []float64{99, 5, 6}, r.DataP())
	}
	// Copy is independent, Set mutates in place
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		C := M.Copy()
		M.Set(0, 0, 9)
		assert.Equal(t, 9., M.At(0, 0))
		assert.Equal(t, 1., C.At(0, 0))
	}
	// A read-only matrix panics on write
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("A")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
	}
}
