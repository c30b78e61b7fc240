package vet

import (
	"fmt"
	"strconv"
)

type identityTransformation struct{}

// sharedIdentity is the single Identity instance.
var sharedIdentity Transformation = identityTransformation{}

// Identity returns the shared transformation that passes values through
// unchanged. It exists to be a harmless default where a transformation is
// required.
func Identity() Transformation {
	return sharedIdentity
}

// Kind implements Transformation.
func (identityTransformation) Kind() Kind { return KindIdentity }

// Transform implements Transformation.
func (identityTransformation) Transform(_ Instance, _ Parameter, value any) (any, error) {
	return value, nil
}

type asStringTransformation struct{}

// AsString returns a transformation converting present values to their
// string form via fmt. Absent values pass through untouched.
func AsString() Transformation {
	return asStringTransformation{}
}

// Kind implements Transformation.
func (asStringTransformation) Kind() Kind { return KindAsString }

// Transform implements Transformation.
func (asStringTransformation) Transform(_ Instance, _ Parameter, value any) (any, error) {
	if Absent(value) {
		return value, nil
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return fmt.Sprint(value), nil
}

type asIntegerTransformation struct{}

// AsInteger returns a transformation converting present values to int.
// Strings are parsed; integer kinds are widened or narrowed; floats must be
// whole numbers. Absent values pass through untouched.
func AsInteger() Transformation {
	return asIntegerTransformation{}
}

// Kind implements Transformation.
func (asIntegerTransformation) Kind() Kind { return KindAsInteger }

// Transform implements Transformation.
func (asIntegerTransformation) Transform(_ Instance, _ Parameter, value any) (any, error) {
	if Absent(value) {
		return value, nil
	}

	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float32:
		return wholeToInt(float64(v))
	case float64:
		return wholeToInt(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("can't parse %q as integer: %w", v, err)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("can't convert value %v of type %T to integer", value, value)
	}
}

func wholeToInt(f float64) (any, error) {
	n := int(f)
	if float64(n) != f {
		return nil, fmt.Errorf("can't convert %v to integer without truncation", f)
	}
	return n, nil
}

type asBooleanTransformation struct{}

// AsBoolean returns a transformation converting present values to bool.
// Strings are parsed with strconv.ParseBool. Absent values pass through
// untouched.
func AsBoolean() Transformation {
	return asBooleanTransformation{}
}

// Kind implements Transformation.
func (asBooleanTransformation) Kind() Kind { return KindAsBoolean }

// Transform implements Transformation.
func (asBooleanTransformation) Transform(_ Instance, _ Parameter, value any) (any, error) {
	if Absent(value) {
		return value, nil
	}

	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("can't parse %q as boolean: %w", v, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("can't convert value %v of type %T to boolean", value, value)
	}
}

type chainTransformation struct {
	transformations []Transformation
}

// Chain composes transformations sequentially: each receives the previous
// one's output. The first failure stops the chain.
func Chain(transformations ...Transformation) Transformation {
	list := make([]Transformation, len(transformations))
	copy(list, transformations)
	return chainTransformation{transformations: list}
}

// Kind implements Transformation.
func (chainTransformation) Kind() Kind { return KindChain }

// Transform implements Transformation.
func (c chainTransformation) Transform(inst Instance, param Parameter, value any) (any, error) {
	current := value
	for _, t := range c.transformations {
		out, err := t.Transform(inst, param, current)
		if err != nil {
			return nil, err
		}
		current = out
	}
	return current, nil
}
