package geothermal

// Parameters gathers the fixed physical constants and discretization steps
// shared by every run. Only the reinjection rate and temperature vary per
// record; everything else is changed deliberately, as a unit, through this
// struct. The defaults reproduce the Rivera Diaz reinjection survey model.
type Parameters struct {
	Dz           float64 // node spacing (m)
	DepthMin     float64 // top of the modeled column (m)
	DepthMax     float64 // bottom of the modeled column, exclusive (m)
	Dt           float64 // time step
	FinalTime    float64 // simulated horizon
	Density      float64 // density of geothermal fluid (g/cm3)
	SpecificHeat float64 // specific heat of geothermal fluid
	Conductivity float64 // thermal conductivity of geothermal fluid
	WellheadArea float64 // average reinjection wellhead cross section (m2)
	TempShallow  float64 // undisturbed temperature at DepthMin (C)
	TempDeep     float64 // undisturbed temperature at the column bottom (C)
}

func DefaultParameters() Parameters {
	return Parameters{
		Dz:           10,
		DepthMin:     1000,
		DepthMax:     1500,
		Dt:           0.1,
		FinalTime:    10,
		Density:      1.00,
		SpecificHeat: 4.186,
		Conductivity: 0.6,
		WellheadArea: 0.5,
		TempShallow:  150,
		TempDeep:     250,
	}
}

// Velocity converts a reinjection rate in tonne/hr to a linear velocity
// through the wellhead, v = Q/A, normalizing the rate to per-second first.
func (p Parameters) Velocity(rate float64) float64 {
	return rate / 3600 / p.WellheadArea
}
