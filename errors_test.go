package vet

import (
	"errors"
	"testing"
)

func TestConstraintError_Is(t *testing.T) {
	err := newConstraintError(Parameter{Name: "gid"}, Values{}, 1, errors.New("gid is not set"))

	if !errors.Is(err, ErrConstraintViolated) {
		t.Error("ConstraintError should unwrap to ErrConstraintViolated")
	}
	if errors.Is(err, ErrTransformFailed) {
		t.Error("ConstraintError should not match ErrTransformFailed")
	}
}

func TestConstraintError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with cause",
			err:  newConstraintError(Parameter{Name: "kind"}, Values{}, "admin", errors.New(`value admin of kind is not in allowed set [system user]`)),
			want: "parameter kind: constraint violated: value admin of kind is not in allowed set [system user]",
		},
		{
			name: "without cause",
			err:  &ConstraintError{Err: ErrConstraintViolated, Parameter: Parameter{Name: "gid"}},
			want: "parameter gid: constraint violated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstraintError_Fields(t *testing.T) {
	inst := Values{"gid": 10}
	err := newConstraintError(Parameter{Name: "members"}, inst, []string{"root"}, errors.New("gid is required"))

	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatal("expected *ConstraintError")
	}
	if ce.Parameter.Name != "members" {
		t.Errorf("Parameter.Name = %q, want %q", ce.Parameter.Name, "members")
	}
	if ce.Instance == nil {
		t.Error("Instance should be retained")
	}
	if ce.Value == nil {
		t.Error("Value should be retained")
	}
	if ce.Cause == nil {
		t.Error("Cause should be retained")
	}
}

func TestTransformError_Is(t *testing.T) {
	err := newTransformError(Parameter{Name: "gid"}, errors.New("bad parse"))

	if !errors.Is(err, ErrTransformFailed) {
		t.Error("TransformError should unwrap to ErrTransformFailed")
	}
	if errors.Is(err, ErrConstraintViolated) {
		t.Error("TransformError should not match ErrConstraintViolated")
	}
}

func TestTransformError_Message(t *testing.T) {
	cause := errors.New(`can't parse "x" as integer`)
	err := newTransformError(Parameter{Name: "gid"}, cause)

	want := `parameter gid: transformation failed: can't parse "x" as integer`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSchemaError_Is(t *testing.T) {
	err := newSchemaError(ErrUnknownKind, "Kind", "enums=a|b")

	if !errors.Is(err, ErrUnknownKind) {
		t.Error("SchemaError should unwrap to ErrUnknownKind")
	}
	if errors.Is(err, ErrInvalidTag) {
		t.Error("SchemaError should not match ErrInvalidTag")
	}
}

func TestSchemaError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newSchemaError(ErrUnknownKind, "Kind", "enums=a|b"),
			want: `unknown check directive "enums=a|b" (field Kind)`,
		},
		{
			name: "field only",
			err:  &SchemaError{Err: ErrInvalidTag, Field: "Name"},
			want: "invalid check tag (field Name)",
		},
		{
			name: "bare",
			err:  &SchemaError{Err: ErrInvalidTag},
			want: "invalid check tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
