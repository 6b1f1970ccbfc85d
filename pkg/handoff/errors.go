package handoff

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNegativeCapacity = errors.New("handoff: capacity must not be negative")
	ErrProducerAttached = errors.New("handoff: producer already attached")
	ErrConsumerAttached = errors.New("handoff: consumer already attached")
	ErrConcurrentPut    = errors.New("handoff: concurrent put on single-producer channel")
	ErrConcurrentGet    = errors.New("handoff: concurrent get on single-consumer channel")
	ErrAborted          = errors.New("handoff: channel aborted")
	ErrDriverReused     = errors.New("handoff: driver already used")
)

// UnitError reports the failure of a producer or consumer unit.
type UnitError struct {
	Role  Role
	Cause error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Role, e.Cause)
}

func (e *UnitError) Unwrap() error { return e.Cause }

// PanicError wraps a value recovered from a panicking unit.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens an errors.Join result into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// RoleOf returns the role of the first UnitError found in err.
func RoleOf(err error) (Role, bool) {
	var ue *UnitError
	if errors.As(err, &ue) {
		return ue.Role, true
	}
	return "", false
}
