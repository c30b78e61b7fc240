package vet

import "fmt"

type satisfiesConstraint struct {
	description string
	pred        Predicate
}

// Satisfies builds a constraint from a human-readable description and a
// predicate. Absent values pass without invoking the predicate. A false
// predicate result fails with a message naming the value, the description,
// and the parameter.
func Satisfies(description string, pred Predicate) Constraint {
	return satisfiesConstraint{description: description, pred: pred}
}

// Kind implements Constraint.
func (satisfiesConstraint) Kind() Kind { return KindSatisfies }

// Check implements Constraint.
func (c satisfiesConstraint) Check(inst Instance, param Parameter, value any) error {
	if Absent(value) {
		return nil
	}

	ok, err := c.pred(inst, value)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("value %v of %s doesn't satisfy the condition: %s", value, param.Name, c.description)
	}

	return nil
}
