package vet

import (
	"fmt"
	"reflect"
)

type enumConstraint struct {
	allowed []any
}

// Enum builds a membership constraint. Nested slices and arrays are
// flattened into a single allowed set at construction, so Enum(1, 2, 3) and
// Enum([]any{1, 2, 3}) declare the same constraint. Membership is decided by
// structural equality. Absent values pass.
func Enum(values ...any) Constraint {
	return enumConstraint{allowed: flattenValues(values)}
}

// flattenValues expands nested slices and arrays depth-first.
func flattenValues(values []any) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		rv := reflect.ValueOf(v)
		if v != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			nested := make([]any, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				nested[i] = rv.Index(i).Interface()
			}
			out = append(out, flattenValues(nested)...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// Kind implements Constraint.
func (enumConstraint) Kind() Kind { return KindEnum }

// Check implements Constraint.
func (c enumConstraint) Check(_ Instance, param Parameter, value any) error {
	if Absent(value) {
		return nil
	}

	for _, allowed := range c.allowed {
		if reflect.DeepEqual(allowed, value) {
			return nil
		}
	}

	return fmt.Errorf("value %v of %s is not in allowed set %v", value, param.Name, c.allowed)
}
