package ingest

// PendingResult is a qualifying result whose driver and constructor are
// still referenced by natural key. It is promoted to a
// model.QualifyingResult only once both references resolved to persisted
// ids during reconciliation.
type PendingResult struct {
	DriverKey      string
	ConstructorKey string
	Fields         ResultFields
}

// LinkResults attaches the natural-key back references to each row that can
// become a qualifying result. Rows missing the constructor key are dropped
// and counted (the driver key is guaranteed by Normalize).
func LinkResults(rows []NormalizedRow) (pending []PendingResult, skipped int) {
	pending = make([]PendingResult, 0, len(rows))
	for i := range rows {
		if rows[i].Constructor.ConstructorID == "" {
			skipped++
			continue
		}
		pending = append(pending, PendingResult{
			DriverKey:      rows[i].Driver.DriverID,
			ConstructorKey: rows[i].Constructor.ConstructorID,
			Fields:         rows[i].Result,
		})
	}
	return pending, skipped
}
