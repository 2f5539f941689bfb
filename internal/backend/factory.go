// Copyright (c) 2025 Sensorq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import "time"

// New creates a backend API implementation for the given origin.
// Returns the HTTP client (real backend).
func New(origin string, timeout time.Duration) API {
	return newHTTP(origin, timeout)
}
