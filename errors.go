// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import "github.com/vaultmesh/synccore/internal/errs"

// Error kinds callers match against with errors.Is. Each wraps the
// same sentinel the engine's internal layers return, so a manager
// method's error can be inspected without importing internal/errs.
var (
	// ErrIntegrity marks a MAC, signature, or AEAD tag failure. Never
	// retryable.
	ErrIntegrity = errs.Integrity

	// ErrConflict marks an optimistic-concurrency rejection from
	// Upload, Transaction, or Batch. The caller should refetch and
	// retry.
	ErrConflict = errs.Conflict

	// ErrUnauthorized marks an expired or invalid bearer token. The
	// caller may call Account.FetchToken and retry.
	ErrUnauthorized = errs.Unauthorized

	// ErrPermissionDenied marks a server-enforced authorization
	// failure distinct from ErrUnauthorized.
	ErrPermissionDenied = errs.PermissionDenied

	// ErrNotFound marks a missing resource.
	ErrNotFound = errs.NotFound

	// ErrNetwork marks a transport-layer failure. Retryable.
	ErrNetwork = errs.Network

	// ErrTemporaryServer marks a 502/503/504 response. Retryable with
	// backoff.
	ErrTemporaryServer = errs.TemporaryServer

	// ErrServer marks any other 5xx response.
	ErrServer = errs.Server

	// ErrHTTP is the catch-all for any other non-2xx HTTP status.
	ErrHTTP = errs.Http

	// ErrProgramming marks a contract violation detected by the
	// client itself, such as an invitation recipient's public key not
	// matching the one the caller supplied. A bug signal; never
	// retry.
	ErrProgramming = errs.Programming
)
