package model

import "fmt"

// Validation bounds for camper and signup fields
const (
	MinCamperAge = 8
	MaxCamperAge = 18

	MinSignupHour = 0
	MaxSignupHour = 23
)

// Per-field validators. Both the create and the partial-update paths go
// through these, so the two paths can never drift apart.

// ValidateCamperName rejects empty names
func ValidateCamperName(name string) *FieldError {
	if name == "" {
		return &FieldError{Field: "name", Message: "name must not be empty"}
	}
	return nil
}

// ValidateCamperAge rejects ages outside the allowed range
func ValidateCamperAge(age int) *FieldError {
	if age < MinCamperAge || age > MaxCamperAge {
		return &FieldError{
			Field:   "age",
			Message: fmt.Sprintf("age must be between %d and %d", MinCamperAge, MaxCamperAge),
		}
	}
	return nil
}

// ValidateSignupTime rejects hours outside the day
func ValidateSignupTime(hour int) *FieldError {
	if hour < MinSignupHour || hour > MaxSignupHour {
		return &FieldError{
			Field:   "time",
			Message: fmt.Sprintf("time must be between %d and %d", MinSignupHour, MaxSignupHour),
		}
	}
	return nil
}
