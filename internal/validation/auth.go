package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/openwrench/mechanic-review/internal/model"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// passwordSymbols is the fixed set of symbols a password may (and must,
// at least once) contain.
const passwordSymbols = "@$!%*?&"

// ValidateEmail checks presence and the two-part local@domain.tld shape.
func ValidateEmail(email string) *Error {
	if strings.TrimSpace(email) == "" {
		return &Error{Kind: KindEmailRequired, Message: "Email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &Error{Kind: KindInvalidEmail, Message: fmt.Sprintf("Invalid email format: %s", email)}
	}
	return nil
}

// ValidatePassword enforces the password policy: at least 8 characters
// with one lowercase letter, one uppercase letter, one digit and one
// symbol from the allowed set, and nothing outside those classes.
func ValidatePassword(password string) *Error {
	if strings.TrimSpace(password) == "" {
		return &Error{Kind: KindPasswordRequired, Message: "Password is required"}
	}
	if !passwordOK(password) {
		return &Error{
			Kind:    KindWeakPassword,
			Message: "Password must be at least 8 characters long and contain uppercase, lowercase, numbers, and special characters",
		}
	}
	return nil
}

func passwordOK(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false // character outside the allowed classes
		}
	}
	return lower && upper && digit && symbol
}

// ValidateUsername requires a non-blank username; no format constraint.
func ValidateUsername(username string) *Error {
	if strings.TrimSpace(username) == "" {
		return &Error{Kind: KindUsernameRequired, Message: "Username is required"}
	}
	return nil
}

// ValidateRegister collects all failures for a registration submission.
func ValidateRegister(dto model.RegisterUser) []Error {
	var errs []Error
	if e := ValidateUsername(dto.Username); e != nil {
		errs = append(errs, *e)
	}
	if e := ValidateEmail(dto.Email); e != nil {
		errs = append(errs, *e)
	}
	if e := ValidatePassword(dto.Password); e != nil {
		errs = append(errs, *e)
	}
	return errs
}

// ValidateLogin collects all failures for a login submission.
func ValidateLogin(dto model.Credentials) []Error {
	var errs []Error
	if e := ValidateUsername(dto.Username); e != nil {
		errs = append(errs, *e)
	}
	if e := ValidatePassword(dto.Password); e != nil {
		errs = append(errs, *e)
	}
	return errs
}
