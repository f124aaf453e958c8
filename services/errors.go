package services

import "fmt"

// DataSourceError means the orders store is unreachable or its schema is
// missing required columns. Fatal to the request; never retried here.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data source error during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("data source error during %s", e.Op)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// InvalidFilterError means the caller supplied malformed filter inputs
// (end date before start date, unknown category, ...). Reported back so the
// caller can correct and re-submit; never crashes the process.
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return "invalid filter: " + e.Reason
}
