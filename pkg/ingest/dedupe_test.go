package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowFor(driverID, number, constructorID, constructorName string) Row {
	row := sampleRow()
	row[ColDriverID] = driverID
	row[ColPermanentNumber] = number
	row[ColConstructorID] = constructorID
	row[ColConstructorName] = constructorName
	return row
}

func TestUniqueDriversFirstWins(t *testing.T) {
	out := Normalize([]Row{
		rowFor("hamilton", "44", "mercedes", "Mercedes"),
		rowFor("verstappen", "33", "red_bull", "Red Bull"),
		// later occurrence with different fields must not win
		rowFor("hamilton", "99", "mercedes", "Mercedes"),
	})
	drivers := UniqueDrivers(out.Rows)
	assert.Len(t, drivers, 2)
	assert.Equal(t, "hamilton", drivers[0].DriverID)
	assert.Equal(t, "verstappen", drivers[1].DriverID)
	if assert.NotNil(t, drivers[0].PermanentNumber) {
		assert.Equal(t, 44, *drivers[0].PermanentNumber)
	}
}

func TestUniqueConstructors(t *testing.T) {
	out := Normalize([]Row{
		rowFor("hamilton", "44", "mercedes", "Mercedes"),
		rowFor("russell", "63", "mercedes", "Mercedes GP"), // first wins
		rowFor("verstappen", "33", "red_bull", "Red Bull"),
		rowFor("alonso", "14", "", ""), // no constructor id
	})
	constructors := UniqueConstructors(out.Rows)
	assert.Len(t, constructors, 2)
	assert.Equal(t, "mercedes", constructors[0].ConstructorID)
	assert.Equal(t, "Mercedes", constructors[0].Name)
	assert.Equal(t, "red_bull", constructors[1].ConstructorID)
}
