package handler

import (
	"errors"

	"github.com/lakemont/campsignup/internal/model"
	"github.com/lakemont/campsignup/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error bodies across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Validation failures already carry their ProblemDetails.
	var pd *model.ProblemDetails
	if errors.As(err, &pd) {
		return pd
	}

	switch {
	case errors.Is(err, service.ErrCamperNotFound):
		return model.NewNotFoundError("camper")
	case errors.Is(err, service.ErrActivityNotFound):
		return model.NewNotFoundError("activity")
	case errors.Is(err, service.ErrSignupNotFound):
		return model.NewNotFoundError("signup")
	default:
		return model.NewInternalError("")
	}
}
