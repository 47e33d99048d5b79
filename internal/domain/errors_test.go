package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("layout.padding", ErrInvalidInput)

	if err.Error() != "config field layout.padding: invalid input" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected config error to unwrap to ErrInvalidInput")
	}
	if !IsInvalidConfig(fmt.Errorf("wrapped: %w", err)) {
		t.Error("expected wrapped config error to match ErrInvalidConfig")
	}
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewDecodeError("flow.json", "json", cause)

	if err.Error() != "decode[json] flow.json: unexpected EOF" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !IsDecodeError(fmt.Errorf("load: %w", err)) {
		t.Error("expected wrapped decode error to be detected")
	}
	if IsDecodeError(cause) {
		t.Error("plain error must not be a decode error")
	}
	if !errors.Is(err, cause) {
		t.Error("expected decode error to unwrap to its cause")
	}
}

func TestSentinelPredicates(t *testing.T) {
	if !IsNotFound(fmt.Errorf("session x: %w", ErrNotFound)) {
		t.Error("expected IsNotFound on wrapped ErrNotFound")
	}
	if !IsClosed(fmt.Errorf("grow: %w", ErrClosed)) {
		t.Error("expected IsClosed on wrapped ErrClosed")
	}
	if IsNotFound(ErrClosed) {
		t.Error("ErrClosed is not a not-found error")
	}
}
