package domain

// FileMetrics tallies data quality counters for one input file. Duplicates
// and missing values are tracked separately: a row dropped for a missing or
// invalid value counts as missing-handled, a row dropped for repeating a
// dedupe key counts as a duplicate.
type FileMetrics struct {
	FileName             string `json:"file_name"`
	RecordsRead          int    `json:"records_read"`
	DuplicatesRemoved    int    `json:"duplicates_removed"`
	MissingValuesHandled int    `json:"missing_values_handled"`
	RecordsLoaded        int    `json:"records_loaded"`
}
