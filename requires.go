package vet

import (
	"fmt"
	"reflect"
)

// RequiresConstraint demands that sibling parameters are present whenever a
// trigger condition holds for the checked value. The default trigger is
// "value is present".
//
// RequiresConstraint has value semantics: If and When derive new constraints
// and leave the receiver untouched, so a constraint already attached to a
// parameter can never change behavior.
type RequiresConstraint struct {
	dependencies []string
	trigger      Predicate // nil means "value is present"
}

// Requires builds a constraint demanding that each named parameter resolves
// to a present value on the instance whenever the checked value is present.
// Use If or When to replace the trigger condition.
func Requires(names ...string) RequiresConstraint {
	deps := make([]string, len(names))
	copy(deps, names)
	return RequiresConstraint{dependencies: deps}
}

// If derives a constraint whose dependencies are only required when the
// checked value is structurally equal to trigger.
func (c RequiresConstraint) If(trigger any) RequiresConstraint {
	c.trigger = func(_ Instance, value any) (bool, error) {
		return reflect.DeepEqual(value, trigger), nil
	}
	return c
}

// When derives a constraint whose dependencies are only required when pred
// holds for the checked value.
func (c RequiresConstraint) When(pred Predicate) RequiresConstraint {
	c.trigger = pred
	return c
}

// Kind implements Constraint.
func (RequiresConstraint) Kind() Kind { return KindRequires }

// Check implements Constraint.
func (c RequiresConstraint) Check(inst Instance, param Parameter, value any) error {
	triggered, err := c.triggered(inst, value)
	if err != nil {
		return err
	}
	if !triggered {
		return nil
	}

	for _, dep := range c.dependencies {
		v, ok := inst.Get(dep)
		if !ok || Absent(v) {
			return fmt.Errorf("%s is required when %s is set to %v", dep, param.Name, value)
		}
	}

	return nil
}

func (c RequiresConstraint) triggered(inst Instance, value any) (bool, error) {
	if c.trigger == nil {
		return !Absent(value), nil
	}
	return c.trigger(inst, value)
}
