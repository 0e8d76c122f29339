// Package api is the single point of contact with the portal backend.
//
// # Overview
//
// Client exposes one method per backend operation. Every request reads the
// current credential from the session.Store handed to New and, when one is
// present, sends it as "Authorization: Bearer <token>". A missing credential
// is not an error here; the backend decides whether the call needs one.
//
// # Error Handling
//
// Every method returns (T, error). Non-nil errors are *Error values that
// carry the operation, HTTP status, best-effort message, per-field
// complaints parsed from 422 bodies, and the raw body. They unwrap to the
// sentinels ErrUnavailable, ErrUnauthorized, ErrValidation, ErrNoToken and
// ErrUnexpected, so callers can match with errors.Is. Settle folds any call
// into a Result for rendering.
//
// Calls are attempted exactly once; nothing is retried.
package api
