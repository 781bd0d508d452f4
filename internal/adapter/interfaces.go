// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the WISE
// analysis backend.
//
// The primary abstraction is [AnalysisAdapter], which decouples the service
// layer from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for a rejected API key, [ErrUnsupportedMedia] for a file
// the backend cannot read).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wise/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/analysis_adapter_mock.go -package=mock

// AnalysisAdapter sends documents to the analysis backend.
type AnalysisAdapter interface {
	// Analyze uploads the document and API key as multipart form data to
	// POST /api/analyze and returns the decoded report. A 2xx response
	// without metadata or tactics yields [ErrInvalidResponse].
	Analyze(ctx context.Context, upload models.AnalysisUpload) (models.AnalysisReport, error)

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)
}
