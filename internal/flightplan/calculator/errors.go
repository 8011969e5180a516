package calculator

import (
	"errors"
	"fmt"

	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/geo"
)

var (
	ErrInvalidCoordinate       = geo.ErrInvalidCoordinate
	ErrDivisionByZero          = errors.New("division by zero")
	ErrMissingPerformanceField = errors.New("missing performance field")
	ErrInvalidPerformanceData  = errors.New("invalid performance data")
	ErrLimitExceeded           = errors.New("limit exceeded")
)

type LimitKind string

const (
	LimitZFW LimitKind = "ZFW"
	LimitTOW LimitKind = "TOW"
	LimitLW  LimitKind = "LW"
)

// LimitExceededError matches ErrLimitExceeded with errors.Is.
type LimitExceededError struct {
	Kind      LimitKind
	Estimated int64
	Max       int64
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("estimated %s %d kg exceeds maximum allowable %s %d kg", e.Kind, e.Estimated, e.Kind, e.Max)
}

func (e *LimitExceededError) Is(target error) bool {
	return target == ErrLimitExceeded
}
