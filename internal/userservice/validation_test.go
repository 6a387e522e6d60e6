package userservice

import (
	"testing"

	"github.com/lauriko/bloglist/internal/common"
)

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		username string
		valid    bool
	}{
		{username: "", valid: false},
		{username: "a", valid: false},
		{username: "ab", valid: false},
		{username: "abc", valid: true},
		{username: "abcd", valid: true},
		{username: "valid123", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.username, func(t *testing.T) {
			v := common.NewValidator()
			validateUsername(v, tc.username)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		password string
		valid    bool
	}{
		{password: "", valid: false},
		{password: "a", valid: false},
		{password: "ab", valid: false},
		{password: "abc", valid: true},
		{password: "sekret", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}

// Username-length and password-length failures must stay distinguishable.
func TestValidationMessagesAreDistinct(t *testing.T) {
	v := common.NewValidator()
	validateUsername(v, "ab")
	usernameErr := v.ValidationError().Error()

	v = common.NewValidator()
	validatePassword(v, "ab")
	passwordErr := v.ValidationError().Error()

	if usernameErr == passwordErr {
		t.Errorf("expected distinct messages, both were %q", usernameErr)
	}
	if usernameErr != "username must be at least 3 characters long" {
		t.Errorf("unexpected username message: %q", usernameErr)
	}
	if passwordErr != "password must be at least 3 characters long" {
		t.Errorf("unexpected password message: %q", passwordErr)
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{email: "", valid: true},
		{email: "a", valid: false},
		{email: "a@b", valid: false},
		{email: "a@b.com", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
			}
		})
	}
}
