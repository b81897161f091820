package prayer

import "fmt"

// InvalidInputError reports a date, clock or table value that cannot be used
// for estimation.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
