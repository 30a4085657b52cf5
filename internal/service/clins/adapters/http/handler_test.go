package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openclins/clins-converter/internal/service/clins/adapters/fhir"
	"github.com/openclins/clins-converter/internal/service/clins/app"
	"github.com/openclins/clins-converter/internal/service/clins/app/commands"
	"github.com/openclins/clins-converter/internal/service/clins/app/queries"
)

func testRouter() http.Handler {
	cmdBus := app.NewCommandBus(commands.NewConvertDocumentHandler(fhir.NewAssembler(nil)))
	queryBus := app.NewQueryBus(queries.NewGetCapabilitiesQueryHandler())
	return Router(NewServer(cmdBus, queryBus, zerolog.Nop()))
}

const validPayload = `{
	"patientReference": "Patient/p1",
	"authorReference": "Practitioner/a1",
	"custodianReference": "Organization/o1",
	"encounter": "Encounter/e1",
	"sections": [
		{"title": "アレルギー・不耐性反応",
		 "code": {"coding": [{"system": "http://loinc.org", "code": "48765-2"}]},
		 "text": "ペニシリンアレルギー"}
	],
	"documentStatus": "final",
	"createdAt": "2024-01-15T10:30:00+09:00"
}`

func convert(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body is not valid json: %v", err)
	}
	return resp
}

func TestConvertDocument(t *testing.T) {
	rec := convert(t, "/documents/eReferral/$convert", validPayload)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/fhir+json; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	if got := rec.Header().Get("X-Document-Type"); got != "eReferral" {
		t.Errorf("X-Document-Type = %q", got)
	}
	if rec.Header().Get("X-Bundle-Id") == "" {
		t.Error("X-Bundle-Id header missing")
	}

	var bundle map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("body is not valid json: %v", err)
	}
	if bundle["resourceType"] != "Bundle" || bundle["type"] != "document" {
		t.Errorf("unexpected bundle envelope: %v %v", bundle["resourceType"], bundle["type"])
	}
}

func TestConvertDocumentCaseInsensitiveType(t *testing.T) {
	rec := convert(t, "/documents/EREFERRAL/$convert", validPayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Document-Type"); got != "eReferral" {
		t.Errorf("X-Document-Type = %q", got)
	}
}

func TestConvertDocumentXML(t *testing.T) {
	rec := convert(t, "/documents/eCheckup/$convert?format=xml", validPayload)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/fhir+xml; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("body must start with the xml declaration: %.60s", body)
	}
	if !strings.Contains(body, `<Bundle xmlns="http://hl7.org/fhir">`) {
		t.Errorf("body must carry the fhir namespace: %.120s", body)
	}
}

func TestConvertDocumentValidationFailure(t *testing.T) {
	body := strings.Replace(validPayload, `"patientReference": "Patient/p1",`, "", 1)
	rec := convert(t, "/documents/eReferral/$convert", body)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeError(t, rec)
	if resp.Error != "validation_failed" {
		t.Errorf("error = %q", resp.Error)
	}
	if len(resp.Messages) != 1 || !strings.Contains(resp.Messages[0], "patientReference") {
		t.Errorf("messages = %v", resp.Messages)
	}
}

func TestConvertDocumentMalformedBody(t *testing.T) {
	rec := convert(t, "/documents/eReferral/$convert", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != "malformed_body" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestConvertDocumentUnsupportedFormat(t *testing.T) {
	rec := convert(t, "/documents/eReferral/$convert?format=yaml", validPayload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != "unsupported_format" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestConvertDocumentUnknownType(t *testing.T) {
	rec := convert(t, "/documents/eSomething/$convert", validPayload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error != "unknown_document_type" {
		t.Errorf("error = %q", resp.Error)
	}
	if len(resp.Messages) != 1 || !strings.Contains(resp.Messages[0], "eSomething") {
		t.Errorf("messages = %v", resp.Messages)
	}
}

func TestGetCapabilities(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/capabilities", nil)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp queries.GetCapabilitiesResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not valid json: %v", err)
	}
	if resp.ImplementationGuide != "JP-CLINS v1.11.0" || resp.FHIRVersion != "4.0.1" {
		t.Errorf("capabilities = %+v", resp)
	}
	if len(resp.DocumentTypes) != 3 || len(resp.Formats) != 2 {
		t.Errorf("capabilities = %+v", resp)
	}
}

func TestGetHealthStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not valid json: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q", resp["status"])
	}
}
