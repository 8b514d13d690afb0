// Package handler provides HTTP request handlers for the camp signup API.
//
// Each handler struct encapsulates the service it serves requests for
// (campers, activities, signups). Handlers decode request bodies, delegate
// to the service layer, and shape responses with the render package so that
// entity graphs stay acyclic on the wire.
//
// # Response Format
//
//   - WriteJSON: JSON response with a status code
//   - WriteError: RFC 9457 Problem Details error response
//   - WriteNoContent: empty 204 response
//
// Service errors pass through MapServiceError, which turns sentinel errors
// and validation failures into Problem Details documents.
package handler
