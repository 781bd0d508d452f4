package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/internal/utils"
	"github.com/MKhiriev/go-wise/models"
)

const (
	formFieldFile   = "file"
	formFieldAPIKey = "user_api_key"

	// maxFormMemory is kept in memory, larger parts spill to temp files
	maxFormMemory = 1 << 20
	maxBodySize   = service.MaxUploadSize + maxFormMemory
)

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	upload, err := readAnalysisUpload(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.analyze").Msg("invalid multipart form")

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteDetail(w, "Uploaded file is too large.", http.StatusRequestEntityTooLarge)
			return
		}

		status, detail := responseFromError(err)
		if status == http.StatusInternalServerError {
			status, detail = http.StatusBadRequest, "Invalid multipart form."
		}
		utils.WriteDetail(w, detail, status)
		return
	}

	report, err := h.services.AnalysisService.Analyze(r.Context(), upload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.analyze").Msg("analysis failed")
		status, detail := responseFromError(err)
		utils.WriteDetail(w, detail, status)
		return
	}

	if _, err = utils.WriteJSON(w, report, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.analyze").Msg("error writing report")
	}
}

// readAnalysisUpload extracts the document and the API key. A missing key is
// left for the service to reject.
func readAnalysisUpload(r *http.Request) (models.AnalysisUpload, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return models.AnalysisUpload{}, fmt.Errorf("error parsing form: %w", err)
	}

	file, header, err := r.FormFile(formFieldFile)
	if errors.Is(err, http.ErrMissingFile) {
		return models.AnalysisUpload{}, ErrMissingFile
	}
	if err != nil {
		return models.AnalysisUpload{}, fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.AnalysisUpload{}, fmt.Errorf("error reading uploaded file: %w", err)
	}

	return models.AnalysisUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
		APIKey:      r.FormValue(formFieldAPIKey),
	}, nil
}
