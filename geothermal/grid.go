package geothermal

import (
	"math"

	"github.com/geomodels/goreinject/utils"
)

// Grid is the fixed uniform column discretization. Depth coordinates run
// from DepthMin up to but not including DepthMax, stepped by Dz. Immutable
// once built; its node count sizes everything downstream.
type Grid struct {
	Depths utils.Vector
	Dz     float64
}

func NewGrid(p Parameters) (g Grid) {
	var (
		n    = int(math.Ceil((p.DepthMax - p.DepthMin) / p.Dz))
		data = make([]float64, n)
	)
	for i := range data {
		data[i] = p.DepthMin + float64(i)*p.Dz
	}
	g = Grid{
		Depths: utils.NewVector(n, data),
		Dz:     p.Dz,
	}
	return
}

func (g Grid) NodeCount() int { return g.Depths.Len() }

// InitialProfile is the undisturbed geothermal gradient, a linear ramp from
// TempShallow at the top node to TempDeep at the bottom node.
func (g Grid) InitialProfile(p Parameters) utils.Vector {
	return utils.NewVector(g.NodeCount()).Linspace(p.TempShallow, p.TempDeep)
}
