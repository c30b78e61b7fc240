package vet

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrConstraintViolated indicates a constraint rejected a value.
	ErrConstraintViolated = errors.New("constraint violated")

	// ErrTransformFailed indicates a transformation could not convert a value.
	ErrTransformFailed = errors.New("transformation failed")

	// ErrInvalidTag indicates a `check` struct tag directive is malformed.
	ErrInvalidTag = errors.New("invalid check tag")

	// ErrUnknownKind indicates a `check` struct tag names an unknown directive.
	ErrUnknownKind = errors.New("unknown check directive")
)

// ConstraintError is the single standardized failure shape for constraint
// checks. Whatever a constraint's internal logic raises, the invocation
// boundary reports it as a ConstraintError carrying the parameter, the
// instance under validation, and the offending value.
//
// The original internal failure is preserved as Cause and included in the
// rendered message. Unwrap returns ErrConstraintViolated.
type ConstraintError struct {
	Err       error // Sentinel error (ErrConstraintViolated)
	Parameter Parameter
	Instance  Instance
	Value     any
	Cause     error // Original failure from the constraint's internal logic
}

func (e *ConstraintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parameter %s: %s: %v", e.Parameter.Name, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("parameter %s: %s", e.Parameter.Name, e.Err.Error())
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// TransformError is the single standardized failure shape for
// transformations. It carries only the parameter identity and the original
// failure as Cause. Unwrap returns ErrTransformFailed.
type TransformError struct {
	Err       error // Sentinel error (ErrTransformFailed)
	Parameter Parameter
	Cause     error // Original failure from the conversion logic
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parameter %s: %s: %v", e.Parameter.Name, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("parameter %s: %s", e.Parameter.Name, e.Err.Error())
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// SchemaError represents a declaration-time error: a struct's `check` tag
// could not be parsed into a constraint.
type SchemaError struct {
	Err       error  // Underlying sentinel error (ErrInvalidTag, ErrUnknownKind)
	Field     string // Field whose tag failed to parse
	Directive string // Offending tag directive
}

func (e *SchemaError) Error() string {
	if e.Field != "" && e.Directive != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Directive, e.Field)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// newConstraintError standardizes a constraint failure at the invocation
// boundary.
func newConstraintError(param Parameter, inst Instance, value any, cause error) error {
	return &ConstraintError{
		Err:       ErrConstraintViolated,
		Parameter: param,
		Instance:  inst,
		Value:     value,
		Cause:     cause,
	}
}

// newTransformError standardizes a transformation failure at the invocation
// boundary.
func newTransformError(param Parameter, cause error) error {
	return &TransformError{
		Err:       ErrTransformFailed,
		Parameter: param,
		Cause:     cause,
	}
}

// newSchemaError creates a SchemaError for tag parsing failures.
func newSchemaError(sentinel error, field, directive string) error {
	return &SchemaError{
		Err:       sentinel,
		Field:     field,
		Directive: directive,
	}
}
