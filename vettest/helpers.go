// Package vettest provides test utilities for vet.
package vettest

import (
	"github.com/CherifSy/vet"
)

// SpyConstraint records every Check invocation and returns the configured
// error. Use it to observe evaluation order and short-circuiting.
type SpyConstraint struct {
	Calls []SpyCall
	Err   error
}

// SpyCall captures the arguments of one Check invocation.
type SpyCall struct {
	Parameter vet.Parameter
	Value     any
}

// Kind implements vet.Constraint.
func (*SpyConstraint) Kind() vet.Kind { return vet.KindCustom }

// Check implements vet.Constraint.
func (s *SpyConstraint) Check(_ vet.Instance, param vet.Parameter, value any) error {
	s.Calls = append(s.Calls, SpyCall{Parameter: param, Value: value})
	return s.Err
}

// PanicConstraint panics with Message on every check. Use it to verify that
// the invocation boundary standardizes panics.
type PanicConstraint struct {
	Message string
}

// Kind implements vet.Constraint.
func (PanicConstraint) Kind() vet.Kind { return vet.KindCustom }

// Check implements vet.Constraint.
func (p PanicConstraint) Check(vet.Instance, vet.Parameter, any) error {
	panic(p.Message)
}

// Group is a test host shaped like a UNIX group record.
type Group struct {
	Name    *string  `param:"name" check:"not_nil"`
	Kind    *string  `param:"kind" check:"enum=system|user"`
	GID     *int     `param:"gid"`
	Members []string `param:"members" check:"requires=gid"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }
