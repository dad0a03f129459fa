package readfiles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellDataHeader = "Field,Country,Reservoir,Wells,Rate,Temperature\n"

func TestReadWellRecords(t *testing.T) {
	// Well-formed survey rows
	{
		data := wellDataHeader +
			"Wairakei,New Zealand,hot water,12,120.5,60\n" +
			"Larderello,Italy,2-phase high enthalpy,8,480,90.5\n"
		records, err := ReadWellRecords(strings.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, 2, len(records))
		assert.Equal(t, 120.5, records[0].Rate)
		assert.Equal(t, 60., records[0].InjectionTemp)
		assert.Equal(t, "hot water", records[0].Reservoir)
		assert.Equal(t, "2-phase high enthalpy", records[1].Reservoir)
		assert.Equal(t, 480., records[1].Rate)
	}
	// A non-numeric rate fails the whole load, naming the line
	{
		data := wellDataHeader +
			"Wairakei,New Zealand,hot water,12,120.5,60\n" +
			"Larderello,Italy,2-phase high enthalpy,8,n/a,90.5\n"
		_, err := ReadWellRecords(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
		assert.Contains(t, err.Error(), "rate")
	}
	// Same for a non-numeric temperature
	{
		data := wellDataHeader + "Wairakei,New Zealand,hot water,12,120.5,-\n"
		_, err := ReadWellRecords(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temperature")
	}
	// Too few columns
	{
		data := wellDataHeader + "Wairakei,New Zealand,hot water\n"
		_, err := ReadWellRecords(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "columns")
	}
	// Header alone is not a data set
	{
		_, err := ReadWellRecords(strings.NewReader(wellDataHeader))
		require.Error(t, err)
	}
}
