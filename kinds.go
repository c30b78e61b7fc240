package vet

// Kind identifies a constraint or transformation variant.
// Constraint kinds double as `check` tag directive names.
type Kind string

// Constraint kinds.
const (
	// KindNotNil rejects absent values.
	KindNotNil Kind = "not_nil"

	// KindEnum restricts values to a fixed membership set.
	KindEnum Kind = "enum"

	// KindRequires demands sibling parameters when a trigger condition holds.
	KindRequires Kind = "requires"

	// KindDependsOnValue dispatches to a handler keyed by the checked value.
	KindDependsOnValue Kind = "depends_on_value"

	// KindSatisfies tests values against a described predicate.
	KindSatisfies Kind = "satisfies"

	// KindAllOf composes constraints with fail-fast evaluation.
	KindAllOf Kind = "all_of"

	// KindCustom marks user-supplied constraints and transformations.
	KindCustom Kind = "custom"
)

// Transformation kinds.
const (
	// KindIdentity passes values through unchanged.
	KindIdentity Kind = "identity"

	// KindAsString converts values to their string form.
	KindAsString Kind = "as_string"

	// KindAsInteger converts values to int.
	KindAsInteger Kind = "as_integer"

	// KindAsBoolean converts values to bool.
	KindAsBoolean Kind = "as_boolean"

	// KindChain composes transformations sequentially.
	KindChain Kind = "chain"
)

// validConstraintKinds contains all built-in constraint kinds.
var validConstraintKinds = map[Kind]bool{
	KindNotNil:         true,
	KindEnum:           true,
	KindRequires:       true,
	KindDependsOnValue: true,
	KindSatisfies:      true,
	KindAllOf:          true,
	KindCustom:         true,
}

// validTransformKinds contains all built-in transformation kinds.
var validTransformKinds = map[Kind]bool{
	KindIdentity:  true,
	KindAsString:  true,
	KindAsInteger: true,
	KindAsBoolean: true,
	KindChain:     true,
	KindCustom:    true,
}

// IsValidConstraintKind returns true if k is a known constraint kind.
func IsValidConstraintKind(k Kind) bool {
	return validConstraintKinds[k]
}

// IsValidTransformKind returns true if k is a known transformation kind.
func IsValidTransformKind(k Kind) bool {
	return validTransformKinds[k]
}
