package vet

import "reflect"

// Parameter identifies the attribute under validation or transformation.
// It is supplied on every invocation purely for error reporting; constraints
// never store it.
type Parameter struct {
	Name string
}

// Instance is the host object owning the parameter being checked. It exposes
// the object's declared parameter values by name so that constraints like
// Requires can resolve dependencies, and so user-supplied predicates and
// handlers can read sibling parameters.
//
// Get reports false when the instance declares no parameter with that name.
// A declared parameter holding a nil value returns (nil, true).
type Instance interface {
	Get(name string) (value any, ok bool)
}

// Constraint is a configured rule that accepts or rejects a candidate value
// for a named parameter.
//
// Check returns nil to accept the value. Any non-nil error (or panic) is
// translated by the invocation boundary into a ConstraintError; constraints
// are free to return plain descriptive errors.
type Constraint interface {
	// Kind identifies the constraint variant for observability.
	Kind() Kind

	// Check validates value for param against inst.
	Check(inst Instance, param Parameter, value any) error
}

// Transformation is a configured rule that converts a candidate value into a
// derived value. Failures are translated by the invocation boundary into a
// TransformError.
type Transformation interface {
	// Kind identifies the transformation variant for observability.
	Kind() Kind

	// Transform converts value for param against inst.
	Transform(inst Instance, param Parameter, value any) (any, error)
}

// Predicate tests a candidate value against the host instance. It is used by
// Satisfies conditions and Requires triggers. The instance is passed
// explicitly so predicate bodies can read sibling parameters.
type Predicate func(inst Instance, value any) (bool, error)

// Handler reacts to a matched value in a DependsOnValue selector. The handler
// returns an error to reject the value and nil to accept it.
type Handler func(inst Instance, param Parameter, value any) error

// ConstraintFunc adapts a plain function into a Constraint of kind
// KindCustom.
type ConstraintFunc func(inst Instance, param Parameter, value any) error

// Kind implements Constraint.
func (ConstraintFunc) Kind() Kind { return KindCustom }

// Check implements Constraint.
func (f ConstraintFunc) Check(inst Instance, param Parameter, value any) error {
	return f(inst, param, value)
}

// TransformFunc adapts a plain function into a Transformation of kind
// KindCustom.
type TransformFunc func(inst Instance, param Parameter, value any) (any, error)

// Kind implements Transformation.
func (TransformFunc) Kind() Kind { return KindCustom }

// Transform implements Transformation.
func (f TransformFunc) Transform(inst Instance, param Parameter, value any) (any, error) {
	return f(inst, param, value)
}

// Absent reports whether a candidate value counts as missing: a nil
// interface, or a nil pointer, map, slice, channel, or function. Zero values
// and empty strings are present.
func Absent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
