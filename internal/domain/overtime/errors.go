package overtime

import "errors"

// Overtime domain errors
var (
	ErrNegativeOvertimeHours = errors.New("overtime hours must not be negative")
	ErrNegativeOvertimeRate  = errors.New("overtime rate must not be negative")
)
