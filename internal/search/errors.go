package search

import "errors"

// Validation failures surfaced to the HTTP layer as bad-request errors.
// Wrapped with context via fmt.Errorf("%w: ..."), matched with errors.Is.
var (
	ErrInvalidRange = errors.New("invalid range")
	ErrInvalidLimit = errors.New("invalid limit")
)

// CursorError reports a pagination token that failed to decode or carried
// malformed fields. Callers treat it the same as any other bad input; there is
// no fallback to the first page here.
type CursorError struct {
	Reason string
	Err    error
}

func (e *CursorError) Error() string {
	if e.Err != nil {
		return "bad cursor: " + e.Reason + ": " + e.Err.Error()
	}
	return "bad cursor: " + e.Reason
}

func (e *CursorError) Unwrap() error { return e.Err }
