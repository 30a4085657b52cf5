package fhir

import "strings"

// DocumentType selects one of the three JP-CLINS document flows.
type DocumentType string

const (
	DocumentTypeEReferral         DocumentType = "eReferral"
	DocumentTypeEDischargeSummary DocumentType = "eDischargeSummary"
	DocumentTypeECheckup          DocumentType = "eCheckup"
	DocumentTypeUnknown           DocumentType = "unknown"
)

// DocumentTypes lists the supported document flows in a stable order.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeEReferral,
		DocumentTypeEDischargeSummary,
		DocumentTypeECheckup,
	}
}

// ParseDocumentType resolves a selector string case-insensitively.
func ParseDocumentType(s string) (DocumentType, bool) {
	for _, dt := range DocumentTypes() {
		if strings.EqualFold(s, string(dt)) {
			return dt, true
		}
	}
	return DocumentTypeUnknown, false
}
