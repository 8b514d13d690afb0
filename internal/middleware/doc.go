// Package middleware provides HTTP middleware for the camp signup API.
//
// Middlewares compose with Chain and run in the order given:
//
//	wrapped := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	)
//
// RequestID tags every request with an X-Request-ID (honoring one sent by
// the client), Logger emits a structured log line per request, Recovery
// converts panics into 500 Problem Details responses, and CORS answers
// preflight requests against a configured origin allowlist.
//
// The request ID is available downstream via GetRequestID(r.Context()).
package middleware
