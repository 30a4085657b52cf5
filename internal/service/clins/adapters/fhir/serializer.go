package fhir

import (
	"encoding/json"
	"encoding/xml"
	"strings"

	fhirmodel "github.com/openclins/clins-converter/internal/service/clins/adapters/fhir/model"
)

const (
	FormatJSON = "json"
	FormatXML  = "xml"

	ContentTypeJSON = "application/fhir+json; charset=utf-8"
	ContentTypeXML  = "application/fhir+xml; charset=utf-8"
)

// IsValidFormat reports whether format names a supported serialization,
// case-insensitively.
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatJSON, FormatXML:
		return true
	}
	return false
}

// Serialize renders a bundle to the requested format and returns the payload
// together with its content type. Absent optional fields are omitted, never
// rendered as nulls.
func Serialize(bundle fhirmodel.Bundle, format string, pretty bool) (string, string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		payload, err := marshalJSON(bundle, pretty)
		if err != nil {
			return "", "", &SerializationFailure{Err: err}
		}
		return payload, ContentTypeJSON, nil
	case FormatXML:
		payload, err := marshalXML(bundle, pretty)
		if err != nil {
			return "", "", &SerializationFailure{Err: err}
		}
		return payload, ContentTypeXML, nil
	}
	return "", "", &UnsupportedFormatError{Format: format}
}

func marshalJSON(bundle fhirmodel.Bundle, pretty bool) (string, error) {
	if pretty {
		out, err := json.MarshalIndent(bundle, "", "  ")
		return string(out), err
	}
	out, err := json.Marshal(bundle)
	return string(out), err
}

func marshalXML(bundle fhirmodel.Bundle, pretty bool) (string, error) {
	bundle.Xmlns = xmlnsFHIR
	var out []byte
	var err error
	if pretty {
		out, err = xml.MarshalIndent(bundle, "", "  ")
	} else {
		out, err = xml.Marshal(bundle)
	}
	if err != nil {
		return "", err
	}
	return xml.Header + string(out), nil
}

// ClassifyDocument maps a bundle back to its document flow by inspecting
// entry 0's Composition type coding. Any structural anomaly yields unknown,
// never a failure.
func ClassifyDocument(bundle fhirmodel.Bundle) DocumentType {
	if len(bundle.Entry) == 0 {
		return DocumentTypeUnknown
	}
	comp := bundle.Entry[0].Resource.Composition
	if comp == nil || comp.Type == nil {
		return DocumentTypeUnknown
	}
	for _, coding := range comp.Type.Coding {
		if string(coding.System) != systemLOINC {
			continue
		}
		switch string(coding.Code) {
		case loincEReferral:
			return DocumentTypeEReferral
		case loincEDischargeSummary:
			return DocumentTypeEDischargeSummary
		case loincECheckup:
			return DocumentTypeECheckup
		}
	}
	return DocumentTypeUnknown
}
