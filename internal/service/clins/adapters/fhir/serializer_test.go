package fhir

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestIsValidFormat(t *testing.T) {
	for _, format := range []string{"json", "JSON", "xml", "Xml"} {
		if !IsValidFormat(format) {
			t.Errorf("expected %q to be valid", format)
		}
	}
	for _, format := range []string{"yaml", "", "json "} {
		if IsValidFormat(format) {
			t.Errorf("expected %q to be invalid", format)
		}
	}
}

func TestSerializeJSON(t *testing.T) {
	bundle := mustTransform(t, DocumentTypeEReferral, sampleDocument())

	payload, contentType, err := Serialize(bundle, "json", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "application/fhir+json; charset=utf-8" {
		t.Errorf("content type = %q", contentType)
	}
	if strings.Contains(payload, "\n") {
		t.Error("compact output must not contain newlines")
	}
	if strings.Contains(payload, "null") {
		t.Errorf("absent fields must be omitted, not rendered as null: %s", payload)
	}
	if !strings.HasPrefix(payload, `{"resourceType":"Bundle"`) {
		t.Errorf("payload must lead with resourceType: %.80s", payload)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		t.Fatalf("payload is not valid json: %v", err)
	}
	if parsed["type"] != "document" {
		t.Errorf("bundle type = %v", parsed["type"])
	}
}

func TestSerializeJSONPretty(t *testing.T) {
	bundle := mustTransform(t, DocumentTypeEReferral, sampleDocument())

	compact, _, err := Serialize(bundle, "json", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pretty, _, err := Serialize(bundle, "json", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pretty, "\n  ") {
		t.Error("pretty output must be indented")
	}

	// Both renderings carry the same data.
	var a, b map[string]any
	if err := json.Unmarshal([]byte(compact), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(pretty), &b); err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Errorf("pretty and compact renderings differ: %d vs %d keys", len(a), len(b))
	}
}

func TestSerializeXML(t *testing.T) {
	bundle := mustTransform(t, DocumentTypeECheckup, sampleDocument())

	payload, contentType, err := Serialize(bundle, "xml", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "application/fhir+xml; charset=utf-8" {
		t.Errorf("content type = %q", contentType)
	}
	if !strings.HasPrefix(payload, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("payload must start with the xml declaration: %.60s", payload)
	}
	if !strings.Contains(payload, `<Bundle xmlns="http://hl7.org/fhir">`) {
		t.Errorf("payload must declare the fhir namespace: %.120s", payload)
	}
	if !strings.Contains(payload, `<type value="document">`) {
		t.Error("primitives must render as value attributes")
	}
	if !strings.Contains(payload, "<Composition>") {
		t.Error("entry resources must nest under their type element")
	}
}

func TestSerializeUnsupportedFormat(t *testing.T) {
	bundle := mustTransform(t, DocumentTypeEReferral, sampleDocument())

	_, _, err := Serialize(bundle, "yaml", false)
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if ufe.Format != "yaml" {
		t.Errorf("format = %q", ufe.Format)
	}
}

func TestClassifyDocument(t *testing.T) {
	for _, docType := range DocumentTypes() {
		bundle := mustTransform(t, docType, sampleDocument())
		if got := ClassifyDocument(bundle); got != docType {
			t.Errorf("ClassifyDocument round-trip = %q, want %q", got, docType)
		}
	}
}

func TestClassifyDocumentUnknown(t *testing.T) {
	empty := mustTransform(t, DocumentTypeEReferral, sampleDocument())
	empty.Entry = nil
	if got := ClassifyDocument(empty); got != DocumentTypeUnknown {
		t.Errorf("empty bundle classified as %q", got)
	}

	noComp := mustTransform(t, DocumentTypeEReferral, sampleDocument())
	noComp.Entry = noComp.Entry[1:]
	if got := ClassifyDocument(noComp); got != DocumentTypeUnknown {
		t.Errorf("bundle without leading composition classified as %q", got)
	}
}
