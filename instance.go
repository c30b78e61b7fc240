package vet

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register struct tags with sentinel
	sentinel.Tag("param")
	sentinel.Tag("check")
}

// Values is a map-backed Instance for handwritten hosts and tests.
type Values map[string]any

// Get implements Instance.
func (m Values) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// structInstance adapts a struct value to the Instance interface using
// sentinel field metadata.
type structInstance struct {
	value  reflect.Value
	fields map[string][]int
}

// Wrap adapts a struct value into an Instance. Parameter names come from the
// `param` struct tag, falling back to the exported field name. T must be a
// struct type.
func Wrap[T any](v T) Instance {
	return &structInstance{
		value:  reflect.ValueOf(v),
		fields: fieldIndexes[T](),
	}
}

// fieldIndexes maps parameter names to field access paths for T.
func fieldIndexes[T any]() map[string][]int {
	meta := sentinel.Scan[T]()
	fields := make(map[string][]int, len(meta.Fields))
	for _, f := range meta.Fields {
		name := f.Name
		if tag, ok := f.Tags["param"]; ok && tag != "" {
			name = tag
		}
		fields[name] = f.Index
	}
	return fields
}

// Get implements Instance.
func (s *structInstance) Get(name string) (any, bool) {
	index, ok := s.fields[name]
	if !ok {
		return nil, false
	}
	return derefValue(s.value.FieldByIndex(index)), true
}

// derefValue reads a field as a parameter value. Optional parameters are
// declared as pointer fields: a nil pointer reads as an absent value, a
// present one as its pointee.
func derefValue(rv reflect.Value) any {
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return rv.Interface()
}
