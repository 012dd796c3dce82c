// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and
// validation for the sync engine.
//
// Configuration is assembled from two sources, later overriding
// earlier on non-zero fields:
//  1. Defaults ([Default])
//  2. Environment variables
//
// There is no flag or JSON-file source: this package backs a library,
// not a standalone binary, so callers that need flag- or file-based
// configuration compose it themselves and pass the result in, or set
// environment variables before calling [Load].
package config
