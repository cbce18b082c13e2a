package calendar

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below match these through errors.Is,
// so callers can branch on the kind without a type assertion.
var (
	ErrInvalidInputType     = errors.New("invalid input type")
	ErrInvalidEthiopianDate = errors.New("invalid ethiopian date")
	ErrInvalidGregorianDate = errors.New("invalid gregorian date")
	ErrUnknownHoliday       = errors.New("unknown holiday")
)

// InvalidInputTypeError reports a parameter whose value is not a usable number.
type InvalidInputTypeError struct {
	Func     string // function that rejected the value
	Param    string // parameter name
	Expected string // what the parameter accepts
	Value    any    // value received
}

func (e *InvalidInputTypeError) Error() string {
	return fmt.Sprintf("%s: parameter %q expected %s, got %v (%T)", e.Func, e.Param, e.Expected, e.Value, e.Value)
}

func (e *InvalidInputTypeError) Is(target error) bool { return target == ErrInvalidInputType }

// InvalidEthiopianDateError reports a month or day out of range for the year.
type InvalidEthiopianDateError struct {
	Year, Month, Day int
}

func (e *InvalidEthiopianDateError) Error() string {
	return fmt.Sprintf("invalid ethiopian date: %d-%02d-%02d", e.Year, e.Month, e.Day)
}

func (e *InvalidEthiopianDateError) Is(target error) bool { return target == ErrInvalidEthiopianDate }

// InvalidGregorianDateError reports a date that does not exist on the
// Gregorian calendar or lies outside the supported conversion window.
type InvalidGregorianDateError struct {
	Year, Month, Day int
	Reason           string
}

func (e *InvalidGregorianDateError) Error() string {
	return fmt.Sprintf("invalid gregorian date %04d-%02d-%02d: %s", e.Year, e.Month, e.Day, e.Reason)
}

func (e *InvalidGregorianDateError) Is(target error) bool { return target == ErrInvalidGregorianDate }

// UnknownHolidayError reports a movable holiday key with no tewsak entry.
type UnknownHolidayError struct {
	Key string
}

func (e *UnknownHolidayError) Error() string {
	return fmt.Sprintf("unknown holiday key: %q", e.Key)
}

func (e *UnknownHolidayError) Is(target error) bool { return target == ErrUnknownHoliday }
