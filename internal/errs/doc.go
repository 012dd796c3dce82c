// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package errs defines the error-kind taxonomy every layer of the sync
// engine surfaces to its caller: a small set of sentinel Kind values,
// each wrapped by a *Error carrying an optional server-provided detail
// string. Callers distinguish kinds with [errors.Is] against the Kind
// sentinels, or [errors.As] against *Error for the detail.
package errs
