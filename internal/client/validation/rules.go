package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field is the closed set of validated form fields.
type Field int

const (
	Username Field = iota
	Email
	Password
)

func (f Field) String() string {
	switch f {
	case Username:
		return "Username"
	case Email:
		return "Email"
	case Password:
		return "Password"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

func (f Field) lower() string {
	return strings.ToLower(f.String())
}

// PasswordSymbols are the characters that satisfy the symbol requirement.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

// PasswordRequirements describe the password rule for display next to
// password inputs, in the order they are shown.
var PasswordRequirements = []string{
	"Between 8 and 40 characters long",
	"Contains at least one uppercase and one lowercase letter",
	"Contains at least one number",
	"Contains at least one special character (" + PasswordSymbols + ")",
}

const (
	passwordMinLen = 8
	passwordMaxLen = 40
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9._-]{4,25}$`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// rule is the format check and the toast shown when it fails.
type rule struct {
	tag     string
	message string
}

var rules = map[Field]rule{
	Username: {tag: "username", message: "Username must be between 4-25 characters - please try again"},
	Email:    {tag: "account_email", message: "Invalid email provided - please try again"},
	Password: {tag: "password", message: "Password does not meet the complexity requirements - please try again"},
}

// customTags are the format checks registered on every validator.
var customTags = map[string]validator.Func{
	"username": func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	},
	"account_email": func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	},
	"password": func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	},
}

func registerRules(v *validator.Validate) error {
	for tag, fn := range customTags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return nil
}

// IsStrongPassword reports whether p is 8-40 characters long and contains at
// least one ASCII upper-case letter, one ASCII lower-case letter, one ASCII
// digit and one of PasswordSymbols. Other characters are allowed but count
// towards nothing.
func IsStrongPassword(p string) bool {
	n := utf8.RuneCountInString(p)
	if n < passwordMinLen || n > passwordMaxLen {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range p {
		switch {
		case 'A' <= r && r <= 'Z':
			upper = true
		case 'a' <= r && r <= 'z':
			lower = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
