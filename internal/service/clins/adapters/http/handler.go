package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/openclins/clins-converter/internal/service/clins/adapters/fhir"
	"github.com/openclins/clins-converter/internal/service/clins/app"
	"github.com/openclins/clins-converter/internal/service/clins/app/commands"
	"github.com/openclins/clins-converter/internal/service/clins/app/queries"
	"github.com/openclins/clins-converter/internal/service/clins/document"
)

type Server struct {
	cmdBus   app.CommandBus
	queryBus app.QueryBus
	logger   zerolog.Logger
}

func NewServer(cmdBus app.CommandBus, queryBus app.QueryBus, logger zerolog.Logger) *Server {
	return &Server{
		cmdBus:   cmdBus,
		queryBus: queryBus,
		logger:   logger,
	}
}

type errorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}

func (s *Server) ConvertDocument(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = fhir.FormatJSON
	}
	// Early user-facing error instead of a generic conversion failure.
	if !fhir.IsValidFormat(format) {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:    "unsupported_format",
			Messages: []string{(&fhir.UnsupportedFormatError{Format: format}).Error()},
		})
		return
	}

	var in document.Document
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:    "malformed_body",
			Messages: []string{"request body is not a valid document payload"},
		})
		return
	}

	cmd := commands.ConvertDocumentCommand{
		DocumentType: chi.URLParam(r, "documentType"),
		Format:       format,
		Pretty:       r.URL.Query().Get("pretty") == "true",
		Document:     in,
	}

	result, err := s.cmdBus.ConvertDocument(r.Context(), cmd)
	if err != nil {
		s.writeConversionError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("X-Bundle-Id", result.BundleID)
	w.Header().Set("X-Document-Type", result.DocumentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Payload))
}

func (s *Server) writeConversionError(w http.ResponseWriter, err error) {
	var validation *fhir.ValidationFailure
	if errors.As(err, &validation) {
		writeError(w, http.StatusUnprocessableEntity, errorResponse{
			Error:    "validation_failed",
			Messages: validation.Problems,
		})
		return
	}

	var format *fhir.UnsupportedFormatError
	if errors.As(err, &format) {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:    "unsupported_format",
			Messages: []string{format.Error()},
		})
		return
	}

	if errors.Is(err, fhir.ErrUnknownDocumentType) {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:    "unknown_document_type",
			Messages: []string{err.Error()},
		})
		return
	}

	// Internal invariant violation: log the detail, return a generic error.
	s.logger.Error().Err(err).Msg("document conversion failed")
	writeError(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
}

func (s *Server) GetCapabilities(w http.ResponseWriter, r *http.Request) {
	result, err := s.queryBus.GetCapabilities(r.Context(), queries.GetCapabilitiesQuery{})
	if err != nil {
		s.logger.Error().Err(err).Msg("capabilities query failed")
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) GetHealthStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, body errorResponse) {
	writeJSON(w, status, body)
}
