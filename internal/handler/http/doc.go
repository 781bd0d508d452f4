// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the development analysis
// backend.
//
// It mirrors the public surface of the real backend (POST /api/analyze and
// GET /health) so the terminal client can be exercised end to end. Request
// tracing, access logging and response compression are handled here before
// requests reach the service layer.
package http
