package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind distinguishes the error taxonomy described in the engine's error
// handling design: crypto integrity failures, optimistic-concurrency
// rejections, transport failures, and contract violations each need
// different caller behavior (retry, refetch-and-retry, or never retry).
type Kind error

var (
	// Integrity marks a MAC, signature, or AEAD tag failure. Never
	// retryable — the ciphertext or key is wrong, not transient.
	Integrity Kind = errors.New("errs: integrity check failed")

	// Conflict marks an optimistic-concurrency rejection from batch or
	// transaction: the server's stored etag/stoken did not match the
	// caller's. The caller must refetch and retry.
	Conflict Kind = errors.New("errs: version conflict")

	// Unauthorized marks an expired or invalid bearer token. The
	// caller may fetchToken and retry.
	Unauthorized Kind = errors.New("errs: unauthorized")

	// PermissionDenied marks a server-enforced authorization failure
	// distinct from Unauthorized (valid token, insufficient access
	// level on the resource).
	PermissionDenied Kind = errors.New("errs: permission denied")

	// NotFound marks a missing resource.
	NotFound Kind = errors.New("errs: not found")

	// Network marks a transport-layer failure (DNS, connection reset,
	// timeout) below the HTTP layer. Retryable.
	Network Kind = errors.New("errs: network failure")

	// TemporaryServer marks a 502/503/504 response. Retryable with
	// backoff.
	TemporaryServer Kind = errors.New("errs: temporary server error")

	// Server marks any other 5xx response. Not retryable without
	// operator intervention.
	Server Kind = errors.New("errs: server error")

	// Http is the catch-all for any other non-2xx HTTP status.
	Http Kind = errors.New("errs: http error")

	// Programming marks a contract violation detected by the client
	// itself — e.g. uploading an item referencing a missing chunk, or
	// an invitation recipient's pubkey not matching the one the caller
	// supplied. A bug signal; never retry.
	Programming Kind = errors.New("errs: programming error")
)

// Error wraps a Kind with an optional human-readable detail string
// surfaced by the server, and an optional HTTP status code when the
// error originated at the transport boundary.
type Error struct {
	Kind   Kind
	Detail string
	Status int
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

func (e *Error) Unwrap() error { return e.Kind }

// New wraps kind with detail, producing an *Error satisfying
// errors.Is(err, kind).
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// FromHTTPStatus maps an HTTP status code and response body to a Kind
// per the engine's transport error mapping: 401→Unauthorized,
// 403→PermissionDenied, 404→NotFound, 409→Conflict,
// 502/503/504→TemporaryServer, other 5xx→Server, otherwise→Http.
func FromHTTPStatus(status int, body string) *Error {
	e := &Error{Status: status, Detail: body}
	switch status {
	case http.StatusUnauthorized:
		e.Kind = Unauthorized
	case http.StatusForbidden:
		e.Kind = PermissionDenied
	case http.StatusNotFound:
		e.Kind = NotFound
	case http.StatusConflict:
		e.Kind = Conflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		e.Kind = TemporaryServer
	default:
		switch {
		case status >= 500:
			e.Kind = Server
		default:
			e.Kind = Http
		}
	}
	return e
}

// Is reports whether err (or any error in its chain) has the given
// Kind, a thin wrapper over errors.Is for readability at call sites.
func Is(err error, kind Kind) bool {
	return errors.Is(err, kind)
}
