// Package service contains the business rules between handlers and
// repositories: request validation, foreign-key existence checks, hydration
// of relationship collections, and cascade deletes.
//
// Services depend on small repository interfaces defined in this package and
// return either sentinel errors (errors.go) or *model.ProblemDetails for
// validation failures. Handlers translate both through MapServiceError.
package service
