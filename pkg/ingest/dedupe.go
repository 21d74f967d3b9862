package ingest

import (
	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
)

// UniqueDrivers collapses normalized rows into unique drivers keyed by
// their natural id. First occurrence wins; the returned slice keeps the
// first-seen input order.
func UniqueDrivers(rows []NormalizedRow) []model.Driver {
	seen := make(map[string]struct{})
	ret := make([]model.Driver, 0)
	for i := range rows {
		d := &rows[i].Driver
		if _, ok := seen[d.DriverID]; ok {
			continue
		}
		seen[d.DriverID] = struct{}{}
		ret = append(ret, model.Driver{
			DriverID:        d.DriverID,
			PermanentNumber: d.PermanentNumber,
			Code:            d.Code,
			GivenName:       d.GivenName,
			FamilyName:      d.FamilyName,
			DateOfBirth:     d.DateOfBirth,
			Nationality:     d.Nationality,
		})
	}
	return ret
}

// UniqueConstructors collapses normalized rows into unique constructors,
// first occurrence wins. Rows without a constructor id contribute nothing.
func UniqueConstructors(rows []NormalizedRow) []model.Constructor {
	seen := make(map[string]struct{})
	ret := make([]model.Constructor, 0)
	for i := range rows {
		c := &rows[i].Constructor
		if c.ConstructorID == "" {
			continue
		}
		if _, ok := seen[c.ConstructorID]; ok {
			continue
		}
		seen[c.ConstructorID] = struct{}{}
		ret = append(ret, model.Constructor{
			ConstructorID: c.ConstructorID,
			Name:          c.Name,
			Nationality:   c.Nationality,
		})
	}
	return ret
}
