// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/attempt/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_clause_error",
			code:    errors.ErrInvalidClause,
			message: "invalid clause arguments",
			wantStr: "[INVALID_CLAUSE] invalid clause arguments",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "kind name cannot be empty",
			wantStr: "[INVALID_INPUT] kind name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrKindConflict, "kind %q already has parent %q", "ReadError", "IOError")
	want := `kind "ReadError" already has parent "IOError"`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigParse, "cannot parse taxonomy")

		if err.Code != errors.ErrConfigParse {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrConfigParse)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONFIG_PARSE] cannot parse taxonomy: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestBuilderErrors(t *testing.T) {
	if got := errors.InvalidClause().Error(); got != "[INVALID_CLAUSE] invalid clause arguments" {
		t.Errorf("InvalidClause() = %q", got)
	}

	err := errors.InvalidKind("Nope")
	if got := err.Error(); got != "[INVALID_KIND] invalid failure kind" {
		t.Errorf("InvalidKind() = %q", got)
	}
	if err.Details["target"] != "Nope" {
		t.Errorf("InvalidKind() target detail = %v", err.Details["target"])
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"file": "kinds.toml",
		"kind": "ReadError",
	}

	err := errors.New(errors.ErrConfigValid, "unknown parent").WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
	if got := errors.GetErrorDetails(err)["file"]; got != "kinds.toml" {
		t.Errorf("GetErrorDetails() file = %v", got)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidKind, "error 1")
	err2 := errors.New(errors.ErrInvalidKind, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with AttemptError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrConfigLoad, "denied"),
			code:     errors.ErrConfigLoad,
			expected: true,
		},
		{
			name:     "non_attempt_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "attempt_error",
			err:      errors.New(errors.ErrKindConflict, "conflict"),
			expected: errors.ErrKindConflict,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse file")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load taxonomy")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(loadErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var attemptErr *errors.AttemptError
		if !stderrors.As(loadErr.Unwrap(), &attemptErr) {
			t.Fatal("Middle error should be an AttemptError")
		}
		if attemptErr.Code != errors.ErrConfigParse {
			t.Error("Middle error should have ErrConfigParse code")
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(loadErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
