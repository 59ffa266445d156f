package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidKind, "unknown kind: %s", "widget")

	if err.Code != ErrCodeInvalidKind {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidKind)
	}

	if err.Message != "unknown kind: widget" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown kind: widget")
	}

	expected := "INVALID_KIND: unknown kind: widget"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeEngine, cause, "layout failed")

	if err.Code != ErrCodeEngine {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEngine)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeContext, "test"), ErrCodeContext, true},
		{"non-matching code", New(ErrCodeContext, "test"), ErrCodeEngine, false},
		{"wrapped error", Wrap(ErrCodeEngine, New(ErrCodeTimeout, "inner"), "outer"), ErrCodeEngine, true},
		{"fmt wrapped", fmt.Errorf("render: %w", New(ErrCodeTimeout, "slow")), ErrCodeTimeout, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDuplicateID, "x")); got != ErrCodeDuplicateID {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeDuplicateID)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "friendly message")); got != "friendly message" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestFromContext(t *testing.T) {
	err := FromContext(context.DeadlineExceeded, "layout %s", "v1")
	if !Is(err, ErrCodeTimeout) {
		t.Errorf("deadline should map to TIMEOUT, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("timeout error should still match context.DeadlineExceeded")
	}

	err = FromContext(context.Canceled, "layout")
	if err != context.Canceled {
		t.Errorf("cancellation should pass through unchanged, got %v", err)
	}
}

func TestUnresolved(t *testing.T) {
	err := Unresolved("relationship", "id-42")

	if !Is(err, ErrCodeUnresolvedReference) {
		t.Fatal("Unresolved should carry UNRESOLVED_REFERENCE")
	}

	var ref *UnresolvedReferenceError
	if !errors.As(err, &ref) {
		t.Fatal("errors.As should find UnresolvedReferenceError")
	}
	if ref.Kind != "relationship" || ref.ID != "id-42" {
		t.Errorf("got kind=%q id=%q", ref.Kind, ref.ID)
	}
	if ref.Code() != ErrCodeUnresolvedReference {
		t.Errorf("Code() = %v", ref.Code())
	}
}
