// Package model defines domain entities and data structures for the camp API.
//
// # Domain Entities
//
// Three entities form the domain:
//
//   - Camper: a registered camper with a validated name and age
//   - Activity: a camp activity with a name and difficulty
//   - Signup: the association entity joining a camper to an activity at an hour
//
// Relationships are represented as ID fields; hydrated back-references
// (Camper.Signups, Signup.Camper, ...) are attached by the repository only to
// the depth a request needs, so no live object cycle exists at rest.
//
// # Validation
//
// Each constrained field has a pure validator in validate.go returning a
// *FieldError. Request types (CreateCamperRequest, UpdateCamperRequest,
// CreateSignupRequest) call the same validators, so create and partial update
// share one set of rules. Request fields are pointers to distinguish a missing
// key from a zero value.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
