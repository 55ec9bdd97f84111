package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func TestNewDatabaseErrorClassifies(t *testing.T) {
	cases := []struct {
		name   string
		cause  error
		status int
		is     error
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, ErrNotFound},
		{"gorm duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, ErrAlreadyExists},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_categories_slug"`), http.StatusConflict, ErrAlreadyExists},
		{"sqlite unique", errors.New("UNIQUE constraint failed: categories.slug"), http.StatusConflict, ErrAlreadyExists},
		{"foreign key", gorm.ErrForeignKeyViolated, http.StatusBadRequest, ErrForeignKeyConstraint},
		{"connection", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"anything else", errors.New("syntax error"), http.StatusInternalServerError, ErrDatabaseQuery},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("create", "category", tc.cause)
			if err.StatusCode != tc.status {
				t.Errorf("status = %d, want %d", err.StatusCode, tc.status)
			}
			if !errors.Is(err, tc.is) {
				t.Errorf("%v does not wrap %v", err, tc.is)
			}
		})
	}
}

func TestNewDatabaseErrorKeepsClassifiedCause(t *testing.T) {
	inner := NewNotFound("project")
	if got := NewDatabaseError("find", "project", fmt.Errorf("lookup: %w", inner)); got != inner {
		t.Errorf("got %v, want the wrapped ApiErr", got)
	}
}

func TestGetFullErrorFollowsCauses(t *testing.T) {
	err := NewDatabaseError("find", "project", errors.New("boom"))
	if got, want := err.GetFullError(), "database query failed: Failed to find project -> boom"; got != want {
		t.Errorf("GetFullError = %q, want %q", got, want)
	}
	if got := err.Message(); got != "database query failed" {
		t.Errorf("Message = %q", got)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError([]FieldViolation{
		{Field: "title", Rule: "required"},
		{Field: "color", Rule: "rgbhex"},
		{Field: "content", Rule: "max", Param: "5000"},
	})
	if err.Field != "title" || !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("first violation not reported: %+v", err)
	}
	want := "title is required; color must satisfy rgbhex; content must satisfy max=5000"
	if err.Details != want {
		t.Errorf("Details = %q, want %q", err.Details, want)
	}

	if err := NewValidationError([]FieldViolation{{Field: "color", Rule: "rgbhex"}}); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("non-required violation = %v", err)
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(NewTokenExpiredError()); got != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d", got)
	}
	if got := StatusCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("StatusCode(plain) = %d", got)
	}
}
