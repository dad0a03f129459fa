package geothermal

import (
	"math"

	"github.com/geomodels/goreinject/utils"
)

// WellRecord is one reinjection event drawn from the survey data.
type WellRecord struct {
	Rate          float64 // reinjection rate of geothermal fluid (tonne/hr)
	InjectionTemp float64 // reinjection temperature (C)
	Reservoir     string  // reservoir category, used only to group results
}

// Result pairs the final temperature profile with its grid and the record
// that produced it, so a consumer can group output by reservoir category.
type Result struct {
	Profile utils.Vector
	Grid    Grid
	Record  WellRecord
}

// Simulate runs one record to the fixed horizon and returns its final
// profile. When the stability gate rejects the record's rate the run aborts
// with a nil Result and the *InstabilityError; nothing is retried.
func Simulate(rec WellRecord, p Parameters) (*Result, error) {
	var (
		g = NewGrid(p)
		n = g.NodeCount()
	)
	op, err := NewOperator(p.Velocity(rec.Rate), n, p)
	if err != nil {
		return nil, err
	}
	T := g.InitialProfile(p)
	// March t = 0..FinalTime inclusive. An integer step count keeps the
	// horizon from drifting with accumulated float increments.
	nsteps := int(math.Round(p.FinalTime/p.Dt)) + 1
	for step := 0; step < nsteps; step++ {
		T = op.Apply(T)
		// Reimpose the inlet condition every step: the identity rows only
		// preserve whatever value was last written there.
		T.V.SetVec(0, rec.InjectionTemp)
		T.V.SetVec(1, rec.InjectionTemp)
	}
	return &Result{Profile: T, Grid: g, Record: rec}, nil
}
