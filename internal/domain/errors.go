package domain

import (
	"errors"
	"fmt"
	"strings"
)

// InsufficientDataError means no valuation method could run, or every
// method that ran produced zero value. It is terminal for the valuate
// step, but the run still persists with it surfaced on the report.
type InsufficientDataError struct {
	MissingFields []string
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data to perform valuation. Missing: %s", strings.Join(e.MissingFields, ", "))
}

// AsInsufficientData unwraps err into an InsufficientDataError if it is one.
func AsInsufficientData(err error) (InsufficientDataError, bool) {
	var ide InsufficientDataError
	ok := errors.As(err, &ide)
	return ide, ok
}

// MethodComputationError wraps a failure inside one valuation method.
// The engine logs it and treats the method as "did not run"; sibling
// methods are unaffected.
type MethodComputationError struct {
	Method string
	Err    error
}

func (e MethodComputationError) Error() string {
	return fmt.Sprintf("%s valuation failed: %v", e.Method, e.Err)
}

func (e MethodComputationError) Unwrap() error {
	return e.Err
}

// AcquisitionError wraps an enrichment or market-data failure. The
// pipeline degrades to fallback values instead of aborting.
type AcquisitionError struct {
	Stage string
	Err   error
}

func (e AcquisitionError) Error() string {
	return fmt.Sprintf("%s acquisition failed: %v", e.Stage, e.Err)
}

func (e AcquisitionError) Unwrap() error {
	return e.Err
}
