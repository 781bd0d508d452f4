package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wise/internal/config"
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/utils"
	"github.com/MKhiriev/go-wise/models"
)

const (
	analyzePath = "/api/analyze"
	healthPath  = "/health"

	fileField   = "file"
	apiKeyField = "user_api_key"
)

type httpAnalysisAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAnalysisAdapter constructs the HTTP implementation of
// [AnalysisAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAnalysisAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AnalysisAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAnalysisAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Analyze implements [AnalysisAdapter]. The API key only travels in the
// form body and is never logged.
func (h *httpAnalysisAdapter) Analyze(ctx context.Context, upload models.AnalysisUpload) (models.AnalysisReport, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetMultipartField(fileField, upload.FileName, upload.ContentType, bytes.NewReader(upload.Content)).
		SetMultipartFormData(map[string]string{apiKeyField: upload.APIKey}).
		Post(analyzePath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpAnalysisAdapter.Analyze").Msg("analyze request failed")
		return models.AnalysisReport{}, transportError(ctx, err)
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Dur("took", resp.Time()).
		Msg("analyze response")

	if err = mapHTTPError(resp); err != nil {
		return models.AnalysisReport{}, err
	}

	return decodeReport(resp.Body())
}

// Health implements [AnalysisAdapter].
func (h *httpAnalysisAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, transportError(ctx, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// decodeReport requires the two fields every consumer of a report relies
// on: metadata and tactics (which may be an empty list).
func decodeReport(body []byte) (models.AnalysisReport, error) {
	var probe struct {
		Metadata json.RawMessage `json:"metadata"`
		Tactics  json.RawMessage `json:"tactics"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return models.AnalysisReport{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if isJSONNull(probe.Metadata) {
		return models.AnalysisReport{}, fmt.Errorf("%w: missing metadata", ErrInvalidResponse)
	}
	if isJSONNull(probe.Tactics) {
		return models.AnalysisReport{}, fmt.Errorf("%w: missing tactics", ErrInvalidResponse)
	}

	var report models.AnalysisReport
	if err := json.Unmarshal(body, &report); err != nil {
		return models.AnalysisReport{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if report.Tactics == nil {
		report.Tactics = []models.Tactic{}
	}

	return report, nil
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// transportError keeps context cancellation recognisable and marks
// everything else as an unreachable backend.
func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return ctxErr
	}
	return fmt.Errorf("%w: %w", ErrUnreachable, err)
}
