// Copyright (c) 2025 Sensorq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the sensorq analysis backend.
// It defines the API contract for submitting questions and the HTTP-based
// implementation of that contract.
package backend

import "context"

// API defines the backend operation the CLI depends on.
// Implementations may call the real HTTP endpoint or provide mocks for tests.
type API interface {
	// Ask submits one natural-language question and returns the backend's
	// answer. Exactly one request is performed per call; there is no retry.
	Ask(ctx context.Context, query string) (*Answer, error)
}
