package seed

import "fmt"

// ArgCountError reports that a generator was invoked with the wrong number of
// values. It is the only validation a generator performs.
type ArgCountError struct {
	Generator string
	Want      int
	Got       int
}

// Error implements the error interface for ArgCountError.
func (e *ArgCountError) Error() string {
	return fmt.Sprintf("%s: expected %d arguments, got %d", e.Generator, e.Want, e.Got)
}
