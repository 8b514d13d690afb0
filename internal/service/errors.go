package service

import "errors"

// Centralized service layer errors.
// All sentinel errors returned by service methods are defined here so error
// handling in handlers stays predictable. Validation failures are returned as
// *model.ProblemDetails instead, carrying their field errors.
var (
	ErrCamperNotFound   = errors.New("camper not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrSignupNotFound   = errors.New("signup not found")
)
