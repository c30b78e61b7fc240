package vet

import (
	"context"
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

// Validatable lets a type run its own cross-field checks. Schema.Validate
// calls it after every declared per-field constraint has passed.
type Validatable interface {
	Validate() error
}

// schemaField describes the declared constraint for a single field.
type schemaField struct {
	param      Parameter
	index      []int // reflect.Value.FieldByIndex access path
	constraint Constraint
}

// Schema holds the declared constraints for a struct type, built once by
// scanning `check` struct tags. Schemas are immutable and safe for
// concurrent use.
//
// Tag syntax: comma-separated directives, each optionally carrying an
// argument after '='. Arguments listing several values separate them with
// '|'.
//
//	check:"not_nil"
//	check:"enum=system|user"
//	check:"requires=gid|members"
//	check:"requires=peer,if=leader"
//	check:"not_nil,enum=red|green|blue"
//
// An `if` directive narrows the preceding `requires` to trigger only when
// the field equals the given literal. Several directives on one field
// compose via AllOf and evaluate in tag order. Tag arguments are plain
// strings, so tag-declared enum and if literals match string-valued fields.
type Schema[T any] struct {
	typeName string
	fields   []schemaField
}

// NewSchema builds a schema for T by scanning its `check` struct tags.
// Malformed directives fail with a SchemaError at declaration time.
func NewSchema[T any]() (*Schema[T], error) {
	meta := sentinel.Scan[T]()
	s := &Schema[T]{typeName: meta.TypeName}

	for _, f := range meta.Fields {
		spec, ok := f.Tags["check"]
		if !ok {
			continue
		}

		name := f.Name
		if tag, ok := f.Tags["param"]; ok && tag != "" {
			name = tag
		}

		constraint, err := parseCheckTag(f.Name, spec)
		if err != nil {
			return nil, err
		}

		s.fields = append(s.fields, schemaField{
			param:      Parameter{Name: name},
			index:      f.Index,
			constraint: constraint,
		})
	}

	emitSchemaDeclared(context.Background(), s.typeName, len(s.fields))
	return s, nil
}

// parseCheckTag converts the `check` tag of one field into a constraint.
func parseCheckTag(field, spec string) (Constraint, error) {
	var constraints []Constraint

	for _, directive := range strings.Split(spec, ",") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		name, arg, _ := strings.Cut(directive, "=")
		switch Kind(name) {
		case KindNotNil:
			constraints = append(constraints, NotNil())

		case KindEnum:
			if arg == "" {
				return nil, newSchemaError(ErrInvalidTag, field, directive)
			}
			values := make([]any, 0)
			for _, v := range strings.Split(arg, "|") {
				values = append(values, v)
			}
			constraints = append(constraints, Enum(values...))

		case KindRequires:
			if arg == "" {
				return nil, newSchemaError(ErrInvalidTag, field, directive)
			}
			constraints = append(constraints, Requires(strings.Split(arg, "|")...))

		case "if":
			if len(constraints) == 0 {
				return nil, newSchemaError(ErrInvalidTag, field, directive)
			}
			last, ok := constraints[len(constraints)-1].(RequiresConstraint)
			if !ok {
				return nil, newSchemaError(ErrInvalidTag, field, directive)
			}
			constraints[len(constraints)-1] = last.If(arg)

		default:
			return nil, newSchemaError(ErrUnknownKind, field, directive)
		}
	}

	if len(constraints) == 0 {
		return nil, newSchemaError(ErrInvalidTag, field, spec)
	}
	if len(constraints) == 1 {
		return constraints[0], nil
	}
	return AllOf(constraints...), nil
}

// TypeName returns the scanned type's name.
func (s *Schema[T]) TypeName() string {
	return s.typeName
}

// Fields returns the number of fields carrying declared constraints.
func (s *Schema[T]) Fields() int {
	return len(s.fields)
}

// Validate checks every declared field of v through the invocation boundary
// and returns the first failure as a ConstraintError. When all per-field
// checks pass and v implements Validatable, its own hook runs last.
func (s *Schema[T]) Validate(ctx context.Context, v T) error {
	inst := Wrap(v)
	rv := reflect.ValueOf(v)

	for _, f := range s.fields {
		value := derefValue(rv.FieldByIndex(f.index))
		if err := Check(ctx, f.constraint, inst, f.param, value); err != nil {
			return err
		}
	}

	if validatable, ok := any(v).(Validatable); ok {
		return validatable.Validate()
	}

	return nil
}
