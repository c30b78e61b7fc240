package vet

import "reflect"

type dependsOnValueConstraint struct {
	selector map[any]Handler
}

// DependsOnValue builds a switch-style constraint from a selector mapping
// trigger values to handlers. A value that is not a key in the selector
// passes silently. A matched handler receives the instance, parameter, and
// value, and returns an error to reject the value.
//
// The selector is copied at construction; later mutation of the argument map
// does not affect the constraint.
func DependsOnValue(selector map[any]Handler) Constraint {
	copied := make(map[any]Handler, len(selector))
	for k, h := range selector {
		copied[k] = h
	}
	return dependsOnValueConstraint{selector: copied}
}

// Kind implements Constraint.
func (dependsOnValueConstraint) Kind() Kind { return KindDependsOnValue }

// Check implements Constraint.
func (c dependsOnValueConstraint) Check(inst Instance, param Parameter, value any) error {
	// Values of non-comparable dynamic types can never be selector keys.
	if value != nil && !reflect.TypeOf(value).Comparable() {
		return nil
	}

	handler, ok := c.selector[value]
	if !ok {
		return nil
	}

	return handler(inst, param, value)
}
