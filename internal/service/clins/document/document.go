// Package document defines the typed input payload accepted by the
// converter. The boundary decodes request bodies into these structs so the
// transformation core never inspects untyped values.
package document

import (
	"strings"
	"time"
)

// Recognized document status values.
const (
	StatusFinal       = "final"
	StatusPreliminary = "preliminary"
)

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Section is one narrative block of the source document. The narrative text
// may be empty; the code may not.
type Section struct {
	Title string           `json:"title"`
	Code  *CodeableConcept `json:"code"`
	Text  string           `json:"text"`
}

type Identifier struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Contact carries optional contact details for the custodian organization.
type Contact struct {
	Phone      string `json:"phone,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Document is the generic clinical-document payload shared by all three
// document flows. References are string pointers of the shape
// "ResourceType/id".
type Document struct {
	PatientReference   string      `json:"patientReference"`
	AuthorReference    string      `json:"authorReference"`
	CustodianReference string      `json:"custodianReference"`
	EncounterReference string      `json:"encounter"`
	AuthorIdentifier   *Identifier `json:"authorIdentifier,omitempty"`
	CustodianContact   *Contact    `json:"custodianContact,omitempty"`
	Sections           []Section   `json:"sections"`
	Status             string      `json:"documentStatus"`
	CreatedAt          time.Time   `json:"createdAt"`
}

// SplitReference breaks a "ResourceType/id" pointer into its parts. It
// reports false when the string does not carry both parts.
func SplitReference(ref string) (resourceType, id string, ok bool) {
	resourceType, id, ok = strings.Cut(ref, "/")
	if !ok || resourceType == "" || id == "" {
		return "", "", false
	}
	return resourceType, id, true
}
