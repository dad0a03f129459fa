package InputParameters

import (
	"fmt"

	"github.com/geomodels/goreinject/geothermal"
	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. Fields left out of the file
// keep the survey model defaults.
type InputParametersGeo struct {
	Title        string  `yaml:"Title"`
	Dz           float64 `yaml:"Dz"`
	DepthMin     float64 `yaml:"DepthMin"`
	DepthMax     float64 `yaml:"DepthMax"`
	Dt           float64 `yaml:"Dt"`
	FinalTime    float64 `yaml:"FinalTime"`
	Density      float64 `yaml:"Density"`
	SpecificHeat float64 `yaml:"SpecificHeat"`
	Conductivity float64 `yaml:"Conductivity"`
	WellheadArea float64 `yaml:"WellheadArea"`
	TempShallow  float64 `yaml:"TempShallow"`
	TempDeep     float64 `yaml:"TempDeep"`
}

func NewInputParameters() *InputParametersGeo {
	var (
		def = geothermal.DefaultParameters()
	)
	return &InputParametersGeo{
		Title:        "Geothermal Reinjection",
		Dz:           def.Dz,
		DepthMin:     def.DepthMin,
		DepthMax:     def.DepthMax,
		Dt:           def.Dt,
		FinalTime:    def.FinalTime,
		Density:      def.Density,
		SpecificHeat: def.SpecificHeat,
		Conductivity: def.Conductivity,
		WellheadArea: def.WellheadArea,
		TempShallow:  def.TempShallow,
		TempDeep:     def.TempDeep,
	}
}

func (ip *InputParametersGeo) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Parameters maps the parsed file onto the solver's configuration value.
func (ip *InputParametersGeo) Parameters() geothermal.Parameters {
	return geothermal.Parameters{
		Dz:           ip.Dz,
		DepthMin:     ip.DepthMin,
		DepthMax:     ip.DepthMax,
		Dt:           ip.Dt,
		FinalTime:    ip.FinalTime,
		Density:      ip.Density,
		SpecificHeat: ip.SpecificHeat,
		Conductivity: ip.Conductivity,
		WellheadArea: ip.WellheadArea,
		TempShallow:  ip.TempShallow,
		TempDeep:     ip.TempDeep,
	}
}

func (ip *InputParametersGeo) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Dz\n", ip.Dz)
	fmt.Printf("%8.5f\t= DepthMin\n", ip.DepthMin)
	fmt.Printf("%8.5f\t= DepthMax\n", ip.DepthMax)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= Density\n", ip.Density)
	fmt.Printf("%8.5f\t\t= SpecificHeat\n", ip.SpecificHeat)
	fmt.Printf("%8.5f\t\t= Conductivity\n", ip.Conductivity)
	fmt.Printf("%8.5f\t\t= WellheadArea\n", ip.WellheadArea)
	fmt.Printf("%8.5f\t= TempShallow\n", ip.TempShallow)
	fmt.Printf("%8.5f\t= TempDeep\n", ip.TempDeep)
}
