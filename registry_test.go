package vet

import (
	"errors"
	"testing"
)

type cachedHost struct {
	Name *string `param:"name" check:"not_nil"`
}

func TestUse_Caching(t *testing.T) {
	Reset() // Clear cache

	s1, err := Use[cachedHost]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	s2, err := Use[cachedHost]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if s1 != s2 {
		t.Error("Use() should return cached schema")
	}
}

func TestUse_DistinctTypes(t *testing.T) {
	Reset()

	if _, err := Use[cachedHost](); err != nil {
		t.Fatalf("Use[cachedHost]() error: %v", err)
	}
	if _, err := Use[taggedGroup](); err != nil {
		t.Fatalf("Use[taggedGroup]() error: %v", err)
	}
}

func TestUse_TagErrorNotCached(t *testing.T) {
	Reset()

	if _, err := Use[badDirective](); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Use() = %v, want ErrUnknownKind", err)
	}
	// Parse failures should surface again on retry, not a cached nil.
	if _, err := Use[badDirective](); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("second Use() = %v, want ErrUnknownKind", err)
	}
}

func TestReset(t *testing.T) {
	s1, _ := Use[cachedHost]()

	Reset()

	s2, _ := Use[cachedHost]()

	if s1 == s2 {
		t.Error("Reset() should clear cache, new schema expected")
	}
}
