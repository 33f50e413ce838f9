package dataset

import "fmt"

// DataLoadError reports that the dataset could not be fetched or parsed.
// It is fatal for the session: callers surface it and stop, there is no
// retry.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("cannot load dataset from %s: %v", e.Source, e.Err)
}

// Unwrap supports errors.Is and errors.As.
func (e *DataLoadError) Unwrap() error { return e.Err }

// Cause supports github.com/pkg/errors.Cause.
func (e *DataLoadError) Cause() error { return e.Err }
