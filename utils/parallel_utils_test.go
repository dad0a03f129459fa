package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionMap(t *testing.T) {
	// Partitions tile the index range exactly, max imbalance of one item
	for _, tc := range [][2]int{{1, 5}, {2, 5}, {3, 5}, {4, 100}, {5, 5}, {3, 7}} {
		np, maxIndex := tc[0], tc[1]
		pm := NewPartitionMap(np, maxIndex)
		var total int
		prevEnd := 0
		for n := 0; n < np; n++ {
			kMin, kMax := pm.GetBucketRange(n)
			require.Equal(t, prevEnd, kMin)
			require.LessOrEqual(t, kMin, kMax)
			total += kMax - kMin
			prevEnd = kMax
			assert.Equal(t, kMax-kMin, pm.GetBucketDimension(n))
		}
		assert.Equal(t, maxIndex, total)
		assert.Equal(t, maxIndex, prevEnd)
		// imbalance check
		minDim, maxDim := maxIndex, 0
		for n := 0; n < np; n++ {
			d := pm.GetBucketDimension(n)
			if d < minDim {
				minDim = d
			}
			if d > maxDim {
				maxDim = d
			}
		}
		assert.LessOrEqual(t, maxDim-minDim, 1)
	}
}
