// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/pypath/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "duplicate_error",
			code:    errors.ErrDuplicate,
			message: "'/tmp/a' is already in the user path.",
			wantStr: "[DUPLICATE] '/tmp/a' is already in the user path.",
		},
		{
			name:    "usage_error",
			code:    errors.ErrUsage,
			message: "only a single option allowed",
			wantStr: "[USAGE] only a single option allowed",
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
	err := errors.Newf(errors.ErrIndexOutOfRange, "Index %d exceeds the number of known user paths.", 4)

	want := "Index 4 exceeds the number of known user paths."
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrStorage, "cannot read path file")

		if err.Code != errors.ErrStorage {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrStorage)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[STORAGE] cannot read path file: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrStorage, "cannot read path file")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "not found").
		WithDetail("path", "/test/path").
		WithDetail("index", 3)

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}

	if err.Details["index"] != 3 {
		t.Errorf("WithDetail() index = %v, want %v", err.Details["index"], 3)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrDuplicate, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should work with PypathError")
	}
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
			err:      errors.New(errors.ErrInvalidPath, "'/nope' does not exist."),
			code:     errors.ErrInvalidPath,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrIndexOutOfRange,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileWrite, "denied"),
			code:     errors.ErrFileWrite,
			expected: true,
		},
		{
			name:     "plain_error",
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
	if got := errors.GetErrorCode(errors.New(errors.ErrUsage, "bad")); got != errors.ErrUsage {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUsage)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "coded_error_drops_code",
			err:  errors.New(errors.ErrDuplicate, "'/tmp/a' is already in the user path."),
			want: "'/tmp/a' is already in the user path.",
		},
		{
			name: "wrapped_cause_is_kept",
			err:  errors.Wrap(stderrors.New("disk full"), errors.ErrStorage, "cannot save path file"),
			want: "cannot save path file: disk full",
		},
		{
			name: "plain_error",
			err:  stderrors.New("boom"),
			want: "boom",
		},
		{
			name: "nil_error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	storeErr := errors.Wrap(fileErr, errors.ErrStorage, "failed to load path file")

	if !errors.IsErrorCode(storeErr, errors.ErrStorage) {
		t.Error("Top level should have ErrStorage code")
	}

	var pypathErr *errors.PypathError
	if stderrors.As(storeErr.Unwrap(), &pypathErr) {
		if pypathErr.Code != errors.ErrFileAccess {
			t.Error("Middle error should have ErrFileAccess code")
		}
	} else {
		t.Error("Middle error should be a PypathError")
	}

	if !stderrors.Is(storeErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}
