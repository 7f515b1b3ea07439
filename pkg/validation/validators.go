package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Skill names: letters, numbers, spaces, and common tech punctuation: + # . / -
	skillRegex = regexp.MustCompile(`^[\p{L}0-9 +#./-]+$`)
)

// Roles a user can register with.
var validRoles = map[string]bool{
	"admin":      true,
	"employer":   true,
	"job_seeker": true,
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_role", ValidRole)
	_ = v.RegisterValidation("valid_skill", ValidSkill)
}

// ValidRole validates that a string is one of the known user roles
func ValidRole(fl validator.FieldLevel) bool {
	return validRoles[fl.Field().String()]
}

// ValidSkill validates that a string contains only valid skill-name characters
func ValidSkill(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return skillRegex.MatchString(val)
}
