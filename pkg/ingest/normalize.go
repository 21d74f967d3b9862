package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/mpapenbr/f1-qualifying-loader/log"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
)

// NormalizedRow carries the typed field sets extracted from one raw row.
type NormalizedRow struct {
	Driver      DriverFields
	Constructor ConstructorFields
	Result      ResultFields
}

type DriverFields struct {
	DriverID        string
	PermanentNumber *int
	Code            *string
	GivenName       string
	FamilyName      string
	DateOfBirth     *time.Time
	Nationality     *string
}

type ConstructorFields struct {
	ConstructorID string
	Name          string
	Nationality   *string
}

type ResultFields struct {
	Season    *int
	Round     *int
	CircuitID string
	Position  *int
	Q1        *string
	Q2        *string
	Q3        *string
}

// NormalizeOutcome is the result of normalizing a slice of raw rows.
// Skipped counts rows dropped for row-level errors (missing driver id),
// Warnings counts data-quality findings (malformed qualifying times).
type NormalizeOutcome struct {
	Rows     []NormalizedRow
	Skipped  int
	Warnings int
}

// Normalize turns raw rows into typed field sets. Malformed or missing
// values degrade to absent fields; only a missing driver identifier drops
// the row. A dropped row never aborts the batch.
func Normalize(rows []Row) NormalizeOutcome {
	out := NormalizeOutcome{Rows: make([]NormalizedRow, 0, len(rows))}
	for i, row := range rows {
		driverID := cleanString(row[ColDriverID])
		if driverID == "" {
			log.Debug("skipping row without driver id", log.Int("row", i))
			out.Skipped++
			continue
		}
		nr := NormalizedRow{
			Driver:      normalizeDriver(row, driverID),
			Constructor: normalizeConstructor(row),
			Result:      normalizeResult(row, &out.Warnings),
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

func normalizeDriver(row Row, driverID string) DriverFields {
	familyName := cleanString(row[ColFamilyName])
	code := optString(row[ColCode])
	if code == nil {
		code = deriveCode(familyName)
	}
	return DriverFields{
		DriverID:        driverID,
		PermanentNumber: optDriverNumber(row[ColPermanentNumber]),
		Code:            code,
		GivenName:       cleanString(row[ColGivenName]),
		FamilyName:      familyName,
		DateOfBirth:     optDate(row[ColDateOfBirth]),
		Nationality:     optString(row[ColNationality]),
	}
}

func normalizeConstructor(row Row) ConstructorFields {
	return ConstructorFields{
		ConstructorID: cleanString(row[ColConstructorID]),
		Name:          cleanString(row[ColConstructorName]),
		Nationality:   optString(row[ColConstructorNationality]),
	}
}

func normalizeResult(row Row, warnings *int) ResultFields {
	return ResultFields{
		Season:    optInt(row[ColSeason]),
		Round:     optInt(row[ColRound]),
		CircuitID: cleanString(row[ColCircuitID]),
		Position:  optInt(row[ColPosition]),
		Q1:        optQualiTime(row, ColQ1, warnings),
		Q2:        optQualiTime(row, ColQ2, warnings),
		Q3:        optQualiTime(row, ColQ3, warnings),
	}
}

// deriveCode builds the 3-letter code from the family name. An absent
// family name yields an absent code, never an empty string. The cut is
// rune-based, family names like "Hülkenberg" keep all three characters.
func deriveCode(familyName string) *string {
	if familyName == "" {
		return nil
	}
	runes := []rune(strings.ToUpper(familyName))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	code := string(runes)
	return &code
}

// absent-value sentinels observed in the source CSV exports
func isAbsent(s string) bool {
	switch s {
	case "", `\N`, "NaN", "nan":
		return true
	}
	return false
}

func cleanString(raw string) string {
	s := strings.TrimSpace(raw)
	if isAbsent(s) {
		return ""
	}
	return s
}

func optString(raw string) *string {
	s := cleanString(raw)
	if s == "" {
		return nil
	}
	return &s
}

func optInt(raw string) *int {
	s := cleanString(raw)
	if s == "" {
		return nil
	}
	// integer coercion failure is not fatal, the value is just absent
	val, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		val = int(f)
	}
	return &val
}

// optDriverNumber treats 0 as "no permanent number assigned", the source
// data uses it for drivers from the pre-number era.
func optDriverNumber(raw string) *int {
	num := optInt(raw)
	if num != nil && *num == 0 {
		return nil
	}
	return num
}

func optDate(raw string) *time.Time {
	s := cleanString(raw)
	if s == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &d
}

// optQualiTime keeps the raw time string (trimmed) and flags values that are
// neither the sentinel nor a "m:ss.sss" time as a data-quality warning.
func optQualiTime(row Row, col string, warnings *int) *string {
	s := cleanString(row[col])
	if s == "" {
		return nil
	}
	if s != model.NoTimeSentinel {
		if _, ok := model.QualiTimeSeconds(s); !ok {
			log.Warn("suspect qualifying time",
				log.String("column", col),
				log.String("value", s),
				log.String("driver", cleanString(row[ColDriverID])))
			*warnings++
		}
	}
	return &s
}
