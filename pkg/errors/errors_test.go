package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(ErrCodeInvalidSize, "biome size must be >= 1, got %d", 0),
			want: "INVALID_SIZE: biome size must be >= 1, got 0",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeCache, errors.New("connection refused"), "redis %s", "localhost:6379"),
			want: "CACHE_ERROR: redis localhost:6379: connection refused",
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

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "encode png")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestIsAndGetCode(t *testing.T) {
	nested := fmt.Errorf("build world: %w", New(ErrCodeUnknownBiome, "unknown biome %q", "lava"))
	wrapped := Wrap(ErrCodeInvalidConfig, New(ErrCodeUnknownWorldType, "inner"), "world.type")

	tests := []struct {
		name string
		err  error
		code Code
		is   bool
		get  Code
	}{
		{"direct", New(ErrCodeUnknownChain, "x"), ErrCodeUnknownChain, true, ErrCodeUnknownChain},
		{"other code", New(ErrCodeUnknownChain, "x"), ErrCodeNotFound, false, ErrCodeUnknownChain},
		{"fmt wrapped", nested, ErrCodeUnknownBiome, true, ErrCodeUnknownBiome},
		{"outermost code wins", wrapped, ErrCodeInvalidConfig, true, ErrCodeInvalidConfig},
		{"plain error", errors.New("plain"), ErrCodeInternal, false, ""},
		{"nil", nil, ErrCodeInternal, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.is {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.is)
			}
			if got := GetCode(tt.err); got != tt.get {
				t.Errorf("GetCode(%v) = %q, want %q", tt.err, got, tt.get)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodeSessionNotFound, "session %q not found", "abc"), `session "abc" not found`},
		{fmt.Errorf("wrapped: %w", New(ErrCodeInvalidRegion, "width must be >= 1")), "width must be >= 1"},
		{errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeInvalidSize, "size"), true},
		{New(ErrCodeInvalidFormat, "gif"), true},
		{New(ErrCodeUnknownWorldType, "type"), true},
		{New(ErrCodeUnknownChain, "chain"), true},
		{Wrap(ErrCodeCoordinateRange, errors.New("x"), "range"), true},
		{New(ErrCodeSessionNotFound, "gone"), false},
		{New(ErrCodeCache, "redis down"), false},
		{New(ErrCodeInternal, "boom"), false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		if got := IsClientError(tt.err); got != tt.want {
			t.Errorf("IsClientError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
