package domain

import "fmt"

// ValidationError carries field-level violations found before a write was
// attempted. Keys are JSON field names, values the list of violation messages
// for that field. It is rendered verbatim as the 400 response body.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
