// Package validation checks form fields before anything is sent to the
// server. A failed check shows exactly one error toast; a passed check has
// no side effects.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Notifier is the part of the toast layer the validator needs.
type Notifier interface {
	Error(title, message string) string
}

type Validator struct {
	v      *validator.Validate
	notify Notifier
}

// New builds a Validator reporting through n. It panics when a format rule
// cannot be registered.
func New(n Notifier) *Validator {
	v := validator.New()
	if err := registerRules(v); err != nil {
		panic(err)
	}
	return &Validator{v: v, notify: n}
}

// CheckPresence fails when value is empty after trimming whitespace.
func (val *Validator) CheckPresence(f Field, value string) bool {
	if strings.TrimSpace(value) != "" {
		return true
	}
	val.notify.Error(
		fmt.Sprintf("%s Required", f),
		fmt.Sprintf("You must enter a %s - please try again", f.lower()),
	)
	return false
}

// Validate runs the presence check and then the field's format check.
// An empty value never reaches the format check.
func (val *Validator) Validate(f Field, value string) bool {
	if !val.CheckPresence(f, value) {
		return false
	}

	r, ok := rules[f]
	if !ok {
		val.notify.Error("Invalid Input", "Invalid input provided - please try again")
		return false
	}
	if err := val.v.Var(value, r.tag); err != nil {
		val.notify.Error(fmt.Sprintf("Invalid %s Provided", f), r.message)
		return false
	}
	return true
}

// CheckDifferent fails when next equals current.
func (val *Validator) CheckDifferent(f Field, current, next string) bool {
	if current != next {
		return true
	}
	val.notify.Error(
		fmt.Sprintf("%ss Must Be Different", f),
		fmt.Sprintf("Your new %s must be different from your current %s - please try again", f.lower(), f.lower()),
	)
	return false
}
