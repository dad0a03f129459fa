/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/geomodels/goreinject/InputParameters"
	"github.com/geomodels/goreinject/geothermal"
	"github.com/geomodels/goreinject/readfiles"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type ModelGeo struct {
	WellFile     string
	ICFile       string
	Parallel     int
	Profile      bool
	ShowOperator bool
}

// SimulateCmd represents the simulate command
var SimulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the reinjection transport model over a well data file",
	Long: `
Runs one independent simulation per well record, reporting the final
temperature profile per record and the stability rejections, grouped by
reservoir category,

goreinject simulate -F wells.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		mg := &ModelGeo{}
		mg.WellFile, _ = cmd.Flags().GetString("wellFile")
		mg.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		mg.Parallel, _ = cmd.Flags().GetInt("parallel")
		mg.Profile, _ = cmd.Flags().GetBool("profile")
		mg.ShowOperator, _ = cmd.Flags().GetBool("showOperator")
		ip, records := processInput(mg)
		RunSimulate(mg, ip, records)
	},
}

func processInput(mg *ModelGeo) (ip *InputParameters.InputParametersGeo, records []geothermal.WellRecord) {
	var (
		err      error
		willExit bool
	)
	if len(mg.WellFile) == 0 {
		err = fmt.Errorf("must supply a well data file (-F, --wellFile) in CSV format")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	ip = InputParameters.NewInputParameters()
	if len(mg.ICFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mg.ICFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	} else {
		exampleFile := `
########################################
Title: "Wairakei Reinjection"
Dt: 0.1
FinalTime: 10
Conductivity: 0.6
########################################
`
		fmt.Printf("Using default model parameters; example file for -I:%s\n", exampleFile)
	}
	if records, err = readfiles.ReadWellRecordsFile(mg.WellFile, true); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func RunSimulate(mg *ModelGeo, ip *InputParameters.InputParametersGeo, records []geothermal.WellRecord) {
	if mg.Profile {
		defer profile.Start().Stop()
	}
	ip.Print()
	p := ip.Parameters()
	fmt.Printf("%d well records loaded\n", len(records))

	var (
		results []*geothermal.Result
		errs    []error
	)
	if mg.Parallel > 1 {
		results, errs = geothermal.RunBatchParallel(records, p, mg.Parallel)
	} else {
		results, errs = geothermal.RunBatch(records, p)
	}

	var rejected int
	for i, res := range results {
		rec := records[i]
		if res == nil {
			var ie *geothermal.InstabilityError
			if errors.As(errs[i], &ie) {
				fmt.Printf("[%3d] %-28s rate = %8.2f t/hr, Tinj = %6.2f C -> %s\n",
					i, rec.Reservoir, rec.Rate, rec.InjectionTemp, ie.Error())
				rejected++
				continue
			}
			fmt.Printf("[%3d] error: %s\n", i, errs[i].Error())
			continue
		}
		if mg.ShowOperator && i == 0 {
			op, _ := geothermal.NewOperator(p.Velocity(rec.Rate), res.Grid.NodeCount(), p)
			op.Dense().Print("A")
		}
		fmt.Printf("[%3d] %-28s rate = %8.2f t/hr, Tinj = %6.2f C -> inlet %6.2f C, bottom %6.2f C\n",
			i, rec.Reservoir, rec.Rate, rec.InjectionTemp,
			res.Profile.AtVec(0), res.Profile.AtVec(res.Profile.Len()-1))
	}

	groups := geothermal.GroupByReservoir(results)
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("\n%d simulated, %d rejected by the stability gate\n", len(records)-rejected, rejected)
	for _, k := range keys {
		fmt.Printf("%-28s %d profiles\n", k, len(groups[k]))
	}
}

func init() {
	rootCmd.AddCommand(SimulateCmd)
	SimulateCmd.Flags().StringP("wellFile", "F", "", "Well data file to read in CSV format")
	SimulateCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for model parameters like:\n\t- Dt\n\t- FinalTime\n\t- Conductivity")
	SimulateCmd.Flags().IntP("parallel", "p", 1, "number of concurrent simulation workers")
	SimulateCmd.Flags().Bool("profile", false, "write a CPU profile for the batch run")
	SimulateCmd.Flags().Bool("showOperator", false, "print the assembled transport operator for the first record")
}
