package query

// Row is one result row keyed by column name.
type Row map[string]any

// Record is the column set written by Insert, Upsert and Update.
type Record map[string]any

// Result is the envelope of reads and writes that return rows.
// Data is nil whenever Error is set.
type Result struct {
	Data  []Row
	Error *Error
}

// Err returns Error as an error, nil-safe for interface comparisons.
func (r Result) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// SingleResult is the envelope of Single, MaybeSingle and Upsert.
// Data is nil when no row matched; that is not an error.
type SingleResult struct {
	Data  Row
	Error *Error
}

func (r SingleResult) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// ExecResult is the envelope of Delete.
type ExecResult struct {
	RowsAffected int64
	Error        *Error
}

func (r ExecResult) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// CountResult is the envelope of Count.
type CountResult struct {
	Count int64
	Error *Error
}

func (r CountResult) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}
