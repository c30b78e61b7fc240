package vet

import (
	"context"
	"fmt"
	"time"
)

// Check runs a constraint against (inst, param, value) and standardizes its
// failure. Any non-nil error from the constraint's internal logic, and any
// panic inside user-supplied predicates or handlers, surfaces as a
// ConstraintError carrying the parameter, instance, and value, with the
// original failure preserved as Cause.
//
// An error that is already a ConstraintError passes through unchanged, so
// nested invocations are never double-wrapped.
func Check(ctx context.Context, c Constraint, inst Instance, param Parameter, value any) error {
	start := time.Now()
	err := runCheck(c, inst, param, value)
	emitCheckComplete(ctx, c.Kind(), param.Name, time.Since(start), err)
	return err
}

func runCheck(c Constraint, inst Instance, param Parameter, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newConstraintError(param, inst, value, fmt.Errorf("panic: %v", r))
		}
	}()

	cerr := c.Check(inst, param, value)
	if cerr == nil {
		return nil
	}
	if _, ok := cerr.(*ConstraintError); ok {
		return cerr
	}
	return newConstraintError(param, inst, value, cerr)
}

// Transform runs a transformation against (inst, param, value) and
// standardizes its failure. Any non-nil error from the conversion logic, and
// any panic, surfaces as a TransformError carrying only the parameter, with
// the original failure preserved as Cause.
func Transform(ctx context.Context, t Transformation, inst Instance, param Parameter, value any) (any, error) {
	start := time.Now()
	out, err := runTransform(t, inst, param, value)
	emitTransformComplete(ctx, t.Kind(), param.Name, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func runTransform(t Transformation, inst Instance, param Parameter, value any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = newTransformError(param, fmt.Errorf("panic: %v", r))
		}
	}()

	out, terr := t.Transform(inst, param, value)
	if terr == nil {
		return out, nil
	}
	if _, ok := terr.(*TransformError); ok {
		return nil, terr
	}
	return nil, newTransformError(param, terr)
}

// Bind produces the invocable closure form of a constraint: a function of
// (parameter, value) with the instance already bound. A declaration facility
// stores one bound checker per parameter and calls it on every assignment.
func Bind(ctx context.Context, c Constraint, inst Instance) func(Parameter, any) error {
	return func(param Parameter, value any) error {
		return Check(ctx, c, inst, param, value)
	}
}

// BindTransform produces the invocable closure form of a transformation with
// the instance already bound.
func BindTransform(ctx context.Context, t Transformation, inst Instance) func(Parameter, any) (any, error) {
	return func(param Parameter, value any) (any, error) {
		return Transform(ctx, t, inst, param, value)
	}
}
