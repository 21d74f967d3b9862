package csvsource

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mpapenbr/f1-qualifying-loader/pkg/ingest"
)

// Source reads qualifying rows from a CSV file. The first record is the
// header; every following record is mapped by column name. Rows() re-reads
// the file on every call, so the sequence is restartable.
type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Rows() ([]ingest.Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no header record", s.path)
	}
	header := records[0]
	rows := make([]ingest.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(ingest.Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
