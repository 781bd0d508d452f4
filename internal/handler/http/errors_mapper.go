package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wise/internal/app"
	"github.com/MKhiriev/go-wise/internal/service"
)

type errorResponse struct {
	status int
	detail string
}

// keep specific errors before generic ones, the first match wins
var errorResponses = []struct {
	target error
	response errorResponse
}{
	{service.ErrMissingAPIKey, errorResponse{http.StatusBadRequest, app.DetailMissingAPIKey}},
	{ErrMissingFile, errorResponse{http.StatusUnprocessableEntity, app.DetailMissingFile}},
	{service.ErrEmptyContent, errorResponse{http.StatusUnprocessableEntity, app.DetailEmptyContent}},
	{service.ErrDecodeFailed, errorResponse{http.StatusUnprocessableEntity, ""}},
	{service.ErrDocumentParse, errorResponse{http.StatusUnprocessableEntity, ""}},
	{service.ErrUnsupportedDocument, errorResponse{http.StatusUnsupportedMediaType, ""}},
}

// responseFromError picks the status code and detail for err. An empty
// detail in the table means the error text itself is the detail.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			if e.response.detail == "" {
				return e.response.status, err.Error()
			}
			return e.response.status, e.response.detail
		}
	}
	return http.StatusInternalServerError, app.DetailInternalError
}
