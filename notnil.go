package vet

import "fmt"

type notNilConstraint struct{}

// sharedNotNil is the single NotNil instance. The constraint holds no
// configuration, so one value serves every declaration.
var sharedNotNil Constraint = notNilConstraint{}

// NotNil returns the shared constraint that rejects absent values. Present
// zero values, including 0 and the empty string, pass.
func NotNil() Constraint {
	return sharedNotNil
}

// Kind implements Constraint.
func (notNilConstraint) Kind() Kind { return KindNotNil }

// Check implements Constraint.
func (notNilConstraint) Check(_ Instance, param Parameter, value any) error {
	if Absent(value) {
		return fmt.Errorf("%s is not set", param.Name)
	}
	return nil
}
