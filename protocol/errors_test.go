package protocol

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is(t *testing.T) {
	t.Run("matches by code", func(t *testing.T) {
		err := NewUnknownTool("ghost")

		if !errors.Is(err, ErrUnknownTool) {
			t.Error("expected errors.Is to match ErrUnknownTool")
		}
		if errors.Is(err, ErrMissingParameter) {
			t.Error("expected errors.Is not to match ErrMissingParameter")
		}
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("invoke: %w", NewDuplicateTool("hello"))

		if !errors.Is(err, ErrDuplicateTool) {
			t.Error("expected errors.Is to match through wrapping")
		}
	})

	t.Run("does not match plain errors", func(t *testing.T) {
		if errors.Is(errors.New("unknown_tool"), ErrUnknownTool) {
			t.Error("plain error must not match a coded error")
		}
	})
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"unknown tool", NewUnknownTool("x"), `unknown_tool: no tool named "x"`},
		{"missing parameter", NewMissingParameter("hello", "name"), `missing_parameter: tool "hello" requires parameter "name"`},
		{"invalid parameter", NewInvalidParameter("hello", "name", "expected string"), `invalid_parameter: tool "hello" parameter "name": expected string`},
		{"duplicate tool", NewDuplicateTool("hello"), `duplicate_tool: tool "hello" is already registered`},
		{"handler error", NewHandlerError("hello", "boom"), `handler_error: tool "hello" failed: boom`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
