package extraction

import "fmt"

// ParseError indicates the uploaded bytes could not be interpreted as
// the declared document format (corrupt file or misidentified format).
type ParseError struct {
	Format Format
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot parse %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("cannot parse %s document", e.Format)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
