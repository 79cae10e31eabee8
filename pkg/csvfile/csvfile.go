// Package csvfile reads the comma-delimited feed files used by planefence
// and plane-alert.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ParseError means a line could not be tokenized at all. Short rows and
// comment rows are not parse errors, the loaders filter those themselves.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadAll returns every row of r with its original column count. The first
// unreadable line aborts the whole read.
func ReadAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError

		if errors.As(err, &pe) {
			return nil, &ParseError{Line: pe.Line, Err: pe.Err}
		}

		return nil, err
	}

	return rows, nil
}
