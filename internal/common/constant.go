// Package common contains shared constants and sentinel errors used across
// the portal client packages.
package common

// CredentialSlot is the key of the single persistent slot that holds the
// admin bearer token.
const CredentialSlot = "admin_token"

// CredentialSubjectSlot keeps the identifier the token was issued for, so the
// prompt can show who is logged in without decoding the token.
const CredentialSubjectSlot = "admin_subject"

// HTTP header names used on outbound requests.
const (
	AuthorizationHeaderName  = "Authorization"
	RequestIDHeaderName      = "X-Request-ID"
	IdempotencyKeyHeaderName = "Idempotency-Key"
)
