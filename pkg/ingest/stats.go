package ingest

import "fmt"

// Stats holds the per-class upsert counters of one or more batches.
type Stats struct {
	DriverCreated      int
	DriverUpdated      int
	ConstructorCreated int
	ConstructorUpdated int
	ResultCreated      int
	ResultUpdated      int
	Errors             int
	Warnings           int
}

func (s *Stats) Add(other Stats) {
	s.DriverCreated += other.DriverCreated
	s.DriverUpdated += other.DriverUpdated
	s.ConstructorCreated += other.ConstructorCreated
	s.ConstructorUpdated += other.ConstructorUpdated
	s.ResultCreated += other.ResultCreated
	s.ResultUpdated += other.ResultUpdated
	s.Errors += other.Errors
	s.Warnings += other.Warnings
}

func (s *Stats) String() string {
	return fmt.Sprintf(
		"drivers: %d created/%d updated, constructors: %d created/%d updated, "+
			"results: %d created/%d updated, errors: %d, warnings: %d",
		s.DriverCreated, s.DriverUpdated,
		s.ConstructorCreated, s.ConstructorUpdated,
		s.ResultCreated, s.ResultUpdated,
		s.Errors, s.Warnings)
}
