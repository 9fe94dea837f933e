package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestIsEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.domain.org", "a_b-c@d-e.io"}
	for _, e := range valid {
		if !IsEmail(e) {
			t.Errorf("IsEmail(%q) = false, want true", e)
		}
	}

	invalid := []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"}
	for _, e := range invalid {
		if IsEmail(e) {
			t.Errorf("IsEmail(%q) = true, want false", e)
		}
	}
}

func TestResult_Err(t *testing.T) {
	res := NewResult()
	if err := res.Err(); err != nil {
		t.Errorf("valid Result.Err() = %v, want nil", err)
	}

	res.AddError(NewRequiredError("title", LocationBody))
	err := res.Err()
	if err == nil {
		t.Fatal("invalid Result.Err() = nil")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Err() type = %T, want *Error", err)
	}
	if len(verr.Errors) != 1 {
		t.Errorf("len(Errors) = %d, want 1", len(verr.Errors))
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("Error() = %q, want field name in message", err.Error())
	}
}

func TestNewEnumError_Message(t *testing.T) {
	fe := NewEnumError("role", LocationBody, []string{"admin", "user", "guest"}, "root")
	if fe.Code != ErrCodeEnum {
		t.Errorf("Code = %q, want %q", fe.Code, ErrCodeEnum)
	}
	if !strings.Contains(fe.Message, "admin, user, guest") {
		t.Errorf("Message = %q, want the allowed set listed", fe.Message)
	}
}

func TestFieldError_Error(t *testing.T) {
	fe := NewMinError("page", LocationQuery, 1, 0)
	if got := fe.Error(); got != "query.page: must be >= 1" {
		t.Errorf("Error() = %q", got)
	}
}
