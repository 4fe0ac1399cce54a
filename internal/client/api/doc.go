// Package api is the client side of the remote ERP API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the three
//     endpoints the session manager depends on: login, OTP verification and
//     dashboard.
//  2. A JSON-over-HTTP implementation (see HTTPClient). Every endpoint is a
//     POST; the outcome of a call is carried by the "status" field of the
//     JSON body, not by the HTTP status code.
//  3. IsTokenExpired, the one place where an expired session is recognised
//     from a failure message.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable; undecodable bodies wrap
// ErrMalformedResponse. A well-formed "status": false is not an error at this
// layer; callers that want to surface it use RejectedError, which matches
// ErrRejected under errors.Is.
package api
