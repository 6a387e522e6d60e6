package userservice

import (
	"regexp"

	"github.com/lauriko/bloglist/internal/common"
)

var (
	EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// The minimum-length rules are checked on the plaintext before hashing,
// never after. Username-length and password-length violations carry
// distinguishable messages.
func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(len(username) >= 3, "username", "must be at least 3 characters long")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(len(password) >= 3, "password", "must be at least 3 characters long")
}

// validateEmail only applies when an address was given; registration does
// not require one.
func validateEmail(v *common.Validator, email string) {
	if email == "" {
		return
	}
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}
