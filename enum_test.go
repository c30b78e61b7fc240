package vet

import (
	"strings"
	"testing"
)

func TestEnum_Membership(t *testing.T) {
	c := Enum(1, "2", 3)

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"member int", 1, false},
		{"member string", "2", false},
		{"another member", 3, false},
		{"absent", nil, false},
		{"non-member", 4, true},
		{"type mismatch", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Check(Values{}, Parameter{Name: "kind"}, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Check(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestEnum_Flattening(t *testing.T) {
	flat := Enum(1, 2, 3)
	nested := Enum([]any{1, 2, 3})
	deeply := Enum([]any{1, []any{2, []int{3}}})

	for _, c := range []Constraint{flat, nested, deeply} {
		for _, member := range []any{1, 2, 3} {
			if err := c.Check(Values{}, Parameter{Name: "n"}, member); err != nil {
				t.Errorf("Check(%v) = %v, want nil", member, err)
			}
		}
		if err := c.Check(Values{}, Parameter{Name: "n"}, 4); err == nil {
			t.Error("Check(4) should fail")
		}
	}
}

func TestEnum_StructuralEquality(t *testing.T) {
	// Maps are not flattened; membership is decided structurally.
	c := Enum(map[string]int{"a": 1})

	if err := c.Check(Values{}, Parameter{Name: "m"}, map[string]int{"a": 1}); err != nil {
		t.Errorf("structurally equal map should pass, got %v", err)
	}
	if err := c.Check(Values{}, Parameter{Name: "m"}, map[string]int{"a": 2}); err == nil {
		t.Error("structurally different map should fail")
	}
}

func TestEnum_FailureNamesValueAndSet(t *testing.T) {
	err := Enum("system", "user").Check(Values{}, Parameter{Name: "kind"}, "admin")
	if err == nil {
		t.Fatal("Check should fail")
	}

	msg := err.Error()
	for _, part := range []string{"admin", "system", "user", "kind"} {
		if !strings.Contains(msg, part) {
			t.Errorf("message %q should mention %q", msg, part)
		}
	}
}
