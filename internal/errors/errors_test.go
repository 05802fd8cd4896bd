package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "test error" {
		t.Errorf("expected 'test error', got '%s'", err.Error())
	}
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		if wrapped == nil {
			t.Fatal("expected wrapped error, got nil")
		}
		expected := "wrapped: base error"
		if wrapped.Error() != expected {
			t.Errorf("expected '%s', got '%s'", expected, wrapped.Error())
		}
		if !errors.Is(wrapped, baseErr) {
			t.Error("expected wrapped error to wrap baseErr")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		wrapped := Wrap(nil, "wrapped")
		if wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrIntegrityViolation, "card envelope")

	if !Is(wrapped, ErrIntegrityViolation) {
		t.Error("expected wrapped error to match ErrIntegrityViolation")
	}
	if Is(wrapped, ErrNotFound) {
		t.Error("expected wrapped error to not match ErrNotFound")
	}
}

func TestDistinctBaseErrors(t *testing.T) {
	// Integrity failures must stay distinguishable from the other kinds so
	// handlers cannot accidentally treat tampering as "not found" or as a
	// plain validation failure.
	bases := []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden}
	for _, base := range bases {
		if errors.Is(ErrIntegrityViolation, base) {
			t.Errorf("ErrIntegrityViolation must not match %v", base)
		}
	}
}
