package readfiles

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/geomodels/goreinject/geothermal"
)

// Column layout of the reinjection survey CSV. The leading columns carry
// field name and country, which the solver never reads.
const (
	colReservoir = 2
	colRate      = 4
	colTemp      = 5
	minColumns   = 6
)

func ReadWellRecordsFile(filename string, verbose bool) ([]geothermal.WellRecord, error) {
	if verbose {
		fmt.Printf("Reading well data file named: %s\n", filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	return ReadWellRecords(file)
}

// ReadWellRecords loads the ordered reinjection record collection. The first
// row is a header and is skipped. A row whose rate or temperature column is
// not numeric fails the whole load; bad input should surface here, before
// any solver run.
func ReadWellRecords(r io.Reader) (records []geothermal.WellRecord, err error) {
	var (
		cr   = csv.NewReader(r)
		rows [][]string
	)
	cr.FieldsPerRecord = -1
	if rows, err = cr.ReadAll(); err != nil {
		return nil, fmt.Errorf("unable to read well data: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("well data has no records")
	}
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		if len(row) < minColumns {
			return nil, fmt.Errorf("well data line %d: %d columns, need %d", line, len(row), minColumns)
		}
		var rate, temp float64
		if rate, err = strconv.ParseFloat(row[colRate], 64); err != nil {
			return nil, fmt.Errorf("well data line %d: bad reinjection rate %q", line, row[colRate])
		}
		if temp, err = strconv.ParseFloat(row[colTemp], 64); err != nil {
			return nil, fmt.Errorf("well data line %d: bad reinjection temperature %q", line, row[colTemp])
		}
		records = append(records, geothermal.WellRecord{
			Rate:          rate,
			InjectionTemp: temp,
			Reservoir:     row[colReservoir],
		})
	}
	return records, nil
}
