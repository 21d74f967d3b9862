package quality

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-qualifying-loader/pkg/ingest"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
)

// Report summarizes the quality of a set of normalized rows.
type Report struct {
	TotalRecords     int
	NullValues       map[string]int // per column, counting absent values
	DuplicateResults int            // repeated (season, round, driver) tuples
	UniqueCodes      int
	EmptyCodes       int
	SeasonMin        *int
	SeasonMax        *int
	ValidQualiTimes  int
}

type resultKey struct {
	season, round int
	driver        string
}

func BuildReport(rows []ingest.NormalizedRow) *Report {
	report := &Report{
		TotalRecords: len(rows),
		NullValues:   make(map[string]int),
	}
	seen := make(map[resultKey]struct{})
	codes := make(map[string]struct{})

	for i := range rows {
		r := &rows[i]
		countNulls(report.NullValues, r)

		if r.Driver.Code == nil {
			report.EmptyCodes++
		} else {
			codes[*r.Driver.Code] = struct{}{}
		}
		if r.Result.Season != nil {
			season := *r.Result.Season
			if report.SeasonMin == nil || season < *report.SeasonMin {
				report.SeasonMin = &season
			}
			if report.SeasonMax == nil || season > *report.SeasonMax {
				report.SeasonMax = &season
			}
			if r.Result.Round != nil {
				key := resultKey{season, *r.Result.Round, r.Driver.DriverID}
				if _, dup := seen[key]; dup {
					report.DuplicateResults++
				}
				seen[key] = struct{}{}
			}
		}
		report.ValidQualiTimes += lo.CountBy(
			[]*string{r.Result.Q1, r.Result.Q2, r.Result.Q3},
			func(t *string) bool {
				if t == nil {
					return false
				}
				_, ok := model.QualiTimeSeconds(*t)
				return ok
			})
	}
	report.UniqueCodes = len(codes)
	return report
}

func countNulls(nulls map[string]int, r *ingest.NormalizedRow) {
	if r.Driver.PermanentNumber == nil {
		nulls[ingest.ColPermanentNumber]++
	}
	if r.Driver.Code == nil {
		nulls[ingest.ColCode]++
	}
	if r.Driver.DateOfBirth == nil {
		nulls[ingest.ColDateOfBirth]++
	}
	if r.Driver.Nationality == nil {
		nulls[ingest.ColNationality]++
	}
	if r.Constructor.ConstructorID == "" {
		nulls[ingest.ColConstructorID]++
	}
	if r.Constructor.Nationality == nil {
		nulls[ingest.ColConstructorNationality]++
	}
	if r.Result.Season == nil {
		nulls[ingest.ColSeason]++
	}
	if r.Result.Round == nil {
		nulls[ingest.ColRound]++
	}
	if r.Result.Position == nil {
		nulls[ingest.ColPosition]++
	}
	if r.Result.Q1 == nil {
		nulls[ingest.ColQ1]++
	}
	if r.Result.Q2 == nil {
		nulls[ingest.ColQ2]++
	}
	if r.Result.Q3 == nil {
		nulls[ingest.ColQ3]++
	}
}

func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "records: %d\n", r.TotalRecords)
	fmt.Fprintf(&sb, "duplicate results: %d\n", r.DuplicateResults)
	fmt.Fprintf(&sb, "unique codes: %d (empty: %d)\n", r.UniqueCodes, r.EmptyCodes)
	if r.SeasonMin != nil && r.SeasonMax != nil {
		fmt.Fprintf(&sb, "seasons: %d-%d\n", *r.SeasonMin, *r.SeasonMax)
	}
	fmt.Fprintf(&sb, "valid qualifying times: %d\n", r.ValidQualiTimes)
	for _, col := range ingest.Columns {
		if n, ok := r.NullValues[col]; ok && n > 0 {
			fmt.Fprintf(&sb, "null %s: %d\n", col, n)
		}
	}
	return sb.String()
}
