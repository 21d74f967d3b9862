package model

import (
	"strconv"
	"strings"
	"time"
)

// NoTimeSentinel is used in the source data to mark "no time recorded".
// It is distinct from a malformed time string.
const NoTimeSentinel = "0"

type Driver struct {
	ID              int32 // db-assigned, 0 until persisted
	DriverID        string
	PermanentNumber *int
	Code            *string
	GivenName       string
	FamilyName      string
	DateOfBirth     *time.Time
	Nationality     *string
}

type Constructor struct {
	ID            int32 // db-assigned, 0 until persisted
	ConstructorID string
	Name          string
	Nationality   *string
}

type QualifyingResult struct {
	ID            int32
	Season        int
	Round         int
	CircuitID     string
	Position      *int
	DriverID      int32 // references driver.id
	ConstructorID int32 // references constructor.id
	Q1            *string
	Q2            *string
	Q3            *string
}

// BestTime returns the fastest of q1/q2/q3. Only values in "m:ss.sss" form
// are considered; the sentinel and malformed values are ignored.
// The second return value is false when no time parses.
func (q *QualifyingResult) BestTime() (string, bool) {
	best := ""
	bestSecs := 0.0
	for _, t := range []*string{q.Q1, q.Q2, q.Q3} {
		if t == nil {
			continue
		}
		secs, ok := QualiTimeSeconds(*t)
		if !ok {
			continue
		}
		if best == "" || secs < bestSecs {
			best = *t
			bestSecs = secs
		}
	}
	return best, best != ""
}

// QualiTimeSeconds converts a "m:ss.sss" qualifying time to total seconds.
func QualiTimeSeconds(s string) (float64, bool) {
	if s == NoTimeSentinel || !strings.Contains(s, ":") {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, false
	}
	return float64(minutes)*60 + seconds, true
}

// JoinedResult is the denormalized view of a qualifying result with its
// driver and constructor attributes. Used by the export command.
type JoinedResult struct {
	Season                 int
	Round                  int
	CircuitID              string
	Position               *int
	DriverID               string
	PermanentNumber        *int
	Code                   *string
	GivenName              string
	FamilyName             string
	DateOfBirth            *time.Time
	Nationality            *string
	ConstructorID          string
	ConstructorName        string
	ConstructorNationality *string
	Q1                     *string
	Q2                     *string
	Q3                     *string
}
