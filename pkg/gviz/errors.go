package gviz

import "fmt"

// FetchError reports a non-success HTTP status from the gviz endpoint.
type FetchError struct {
	Sheet      string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch sheet %q: %s", e.Sheet, e.Status)
}

// ParseError reports a malformed CSV or JSON body for a sheet.
type ParseError struct {
	Sheet string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response for sheet %q: %v", e.Sheet, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingColumnError reports a required column absent from a sheet's
// header row.
type MissingColumnError struct {
	Sheet  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in sheet %q", e.Column, e.Sheet)
}
