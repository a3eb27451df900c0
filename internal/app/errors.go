package app

import "fmt"

// DisplayInitError reports that the window or graphics context could not be
// created or failed while running.
type DisplayInitError struct {
	Err error
}

func (e *DisplayInitError) Error() string {
	return fmt.Sprintf("display: %v", e.Err)
}

func (e *DisplayInitError) Unwrap() error { return e.Err }
