// Package vet provides composable parameter validation and transformation.
//
// The package defines small, declaratively configured constraint and
// transformation values that an attribute-declaration facility attaches to
// named parameters of arbitrary host objects. On assignment or access the
// facility invokes the constraint with the parameter's identity, the
// candidate value, and the owning instance; the constraint either accepts
// the value or the invocation boundary reports a single standardized error.
//
// # Constraints
//
// Constraints are built with short factory functions and compose freely:
//
//	vet.NotNil()
//	vet.Enum("system", "user")
//	vet.Requires("gid").If("system")
//	vet.Satisfies("moderate", func(_ vet.Instance, v any) (bool, error) {
//	    return v.(int) < 100, nil
//	})
//	vet.DependsOnValue(map[any]vet.Handler{...})
//	vet.AllOf(vet.NotNil(), vet.Enum(1, 2, 3))
//
// Every constraint is immutable after construction. NotNil is a single
// shared instance. AllOf evaluates strictly left to right and stops at the
// first failure; constraints after the failing one are never invoked.
//
// # Instances
//
// User-supplied predicates and handlers receive the host object explicitly
// as an Instance, an interface exposing the object's parameter values by
// name. Values adapts a plain map; Wrap adapts any struct using sentinel
// metadata and the `param` tag.
//
// # Invocation Boundary
//
// Check and Transform run a constraint or transformation and translate any
// internal failure, whatever its native shape, into exactly one standardized
// error per functor kind:
//
//   - ConstraintError carries the parameter, instance, and value
//   - TransformError carries only the parameter
//
// Both preserve the original failure as Cause and unwrap to their sentinel
// (ErrConstraintViolated, ErrTransformFailed) for errors.Is checks. Panics
// inside user predicates are recovered and reported the same way. Bind and
// BindTransform produce the per-parameter closure form that a declaration
// facility stores against each named parameter.
//
// # Schemas
//
// Schema scans a struct type's `check` tags and validates whole values
// through the same boundary:
//
//	type Group struct {
//	    Name    *string  `param:"name" check:"not_nil"`
//	    Kind    *string  `param:"kind" check:"enum=system|user"`
//	    GID     *int     `param:"gid"`
//	    Members []string `param:"members" check:"requires=gid"`
//	}
//
//	schema, _ := vet.Use[Group]()
//	err := schema.Validate(ctx, group)
//
// Use caches one schema per type; Reset clears the cache for test isolation.
// Types implementing Validatable get their own cross-field hook after the
// declared per-field checks pass.
//
// # Observability
//
// Schema declaration, checks, and transformations emit capitan signals with
// typed keys (parameter, kind, duration, error) for hook-based observability.
package vet
