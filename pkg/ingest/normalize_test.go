package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleRow() Row {
	return Row{
		ColSeason:                 "2021",
		ColRound:                  "1",
		ColCircuitID:              "bahrain",
		ColPosition:               "2",
		ColDriverID:               "hamilton",
		ColPermanentNumber:        "44",
		ColCode:                   "",
		ColGivenName:              " Lewis ",
		ColFamilyName:             "Hamilton",
		ColDateOfBirth:            "1985-01-07",
		ColNationality:            "British",
		ColConstructorID:          "mercedes",
		ColConstructorName:        "Mercedes",
		ColConstructorNationality: "German",
		ColQ1:                     "1:30.617",
		ColQ2:                     "1:30.085",
		ColQ3:                     "1:29.385",
	}
}

func TestNormalizeFullRow(t *testing.T) {
	out := Normalize([]Row{sampleRow()})
	assert.Len(t, out.Rows, 1)
	assert.Equal(t, 0, out.Skipped)
	assert.Equal(t, 0, out.Warnings)

	d := out.Rows[0].Driver
	assert.Equal(t, "hamilton", d.DriverID)
	assert.Equal(t, "Lewis", d.GivenName)
	assert.Equal(t, "Hamilton", d.FamilyName)
	if assert.NotNil(t, d.Code) {
		assert.Equal(t, "HAM", *d.Code)
	}
	if assert.NotNil(t, d.PermanentNumber) {
		assert.Equal(t, 44, *d.PermanentNumber)
	}
	if assert.NotNil(t, d.DateOfBirth) {
		assert.Equal(t, time.Date(1985, 1, 7, 0, 0, 0, 0, time.UTC), *d.DateOfBirth)
	}

	r := out.Rows[0].Result
	if assert.NotNil(t, r.Season) {
		assert.Equal(t, 2021, *r.Season)
	}
	if assert.NotNil(t, r.Position) {
		assert.Equal(t, 2, *r.Position)
	}
}

func TestNormalizeCodeDerivation(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		familyName string
		want       *string
	}{
		{name: "derived from family name", familyName: "Hamilton",
			want: strPtr("HAM")},
		{name: "supplied code wins", code: "XYZ", familyName: "Hamilton",
			want: strPtr("XYZ")},
		{name: "short family name", familyName: "Yu", want: strPtr("YU")},
		{name: "non-ascii family name", familyName: "Hülkenberg",
			want: strPtr("HÜL")},
		{name: "accented second char", familyName: "Pérez", want: strPtr("PÉR")},
		{name: "multibyte third char", familyName: "Æøvik", want: strPtr("ÆØV")},
		{name: "no family name, no code", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := sampleRow()
			row[ColCode] = tt.code
			row[ColFamilyName] = tt.familyName
			out := Normalize([]Row{row})
			got := out.Rows[0].Driver.Code
			if tt.want == nil {
				assert.Nil(t, got)
			} else if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestNormalizeMissingDriverID(t *testing.T) {
	row := sampleRow()
	row[ColDriverID] = "   "
	out := Normalize([]Row{row, sampleRow()})
	assert.Len(t, out.Rows, 1)
	assert.Equal(t, 1, out.Skipped)
}

func TestNormalizeTolerantCoercion(t *testing.T) {
	row := sampleRow()
	row[ColPermanentNumber] = "not-a-number"
	row[ColDateOfBirth] = "07.01.1985"
	row[ColPosition] = `\N`
	row[ColNationality] = ""
	out := Normalize([]Row{row})
	assert.Len(t, out.Rows, 1)
	d := out.Rows[0].Driver
	assert.Nil(t, d.PermanentNumber)
	assert.Nil(t, d.DateOfBirth)
	assert.Nil(t, d.Nationality)
	assert.Nil(t, out.Rows[0].Result.Position)
}

func TestNormalizeZeroPermanentNumber(t *testing.T) {
	row := sampleRow()
	row[ColPermanentNumber] = "0" // pre-number era drivers carry 0
	out := Normalize([]Row{row})
	assert.Nil(t, out.Rows[0].Driver.PermanentNumber)
}

func TestNormalizeSuspectTimeWarning(t *testing.T) {
	row := sampleRow()
	row[ColQ2] = "92.500" // no colon and not the sentinel
	row[ColQ3] = "0"
	out := Normalize([]Row{row})
	assert.Equal(t, 1, out.Warnings)
	// the value itself is kept verbatim
	if assert.NotNil(t, out.Rows[0].Result.Q2) {
		assert.Equal(t, "92.500", *out.Rows[0].Result.Q2)
	}
}

func strPtr(s string) *string { return &s }
