package model

import (
	"encoding/json"
	"encoding/xml"
)

type Bundle struct {
	XMLName    xml.Name      `json:"-" xml:"Bundle"`
	Xmlns      string        `json:"-" xml:"xmlns,attr,omitempty"`
	ID         String        `json:"id,omitempty" xml:"id,omitempty"`
	Meta       *Meta         `json:"meta,omitempty" xml:"meta,omitempty"`
	Identifier *Identifier   `json:"identifier,omitempty" xml:"identifier,omitempty"`
	Type       String        `json:"type,omitempty" xml:"type,omitempty"`
	Timestamp  String        `json:"timestamp,omitempty" xml:"timestamp,omitempty"`
	Entry      []BundleEntry `json:"entry,omitempty" xml:"entry,omitempty"`
}

func (b Bundle) MarshalJSON() ([]byte, error) {
	type alias Bundle
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"Bundle", alias(b)})
}

type BundleEntry struct {
	FullURL  String        `json:"fullUrl,omitempty" xml:"fullUrl,omitempty"`
	Resource EntryResource `json:"resource" xml:"resource"`
}

// EntryResource holds exactly one of the resource kinds a bundle entry may
// carry. In XML the populated pointer nests under <resource> with its
// resource-type element name; in JSON it flattens into the resource object.
type EntryResource struct {
	Composition        *Composition        `json:"-" xml:"Composition,omitempty"`
	Patient            *Patient            `json:"-" xml:"Patient,omitempty"`
	Practitioner       *Practitioner       `json:"-" xml:"Practitioner,omitempty"`
	Organization       *Organization       `json:"-" xml:"Organization,omitempty"`
	Encounter          *Encounter          `json:"-" xml:"Encounter,omitempty"`
	Observation        *Observation        `json:"-" xml:"Observation,omitempty"`
	Condition          *Condition          `json:"-" xml:"Condition,omitempty"`
	AllergyIntolerance *AllergyIntolerance `json:"-" xml:"AllergyIntolerance,omitempty"`
	MedicationRequest  *MedicationRequest  `json:"-" xml:"MedicationRequest,omitempty"`
	ServiceRequest     *ServiceRequest     `json:"-" xml:"ServiceRequest,omitempty"`
	ReferralRequest    *ReferralRequest    `json:"-" xml:"ReferralRequest,omitempty"`
	DocumentReference  *DocumentReference  `json:"-" xml:"DocumentReference,omitempty"`
}

// Resource is implemented by every concrete resource type so callers can
// read and assign identity without knowing the concrete kind.
type Resource interface {
	ResourceName() string
	ResourceID() string
	SetResourceID(id string)
}

// Resource returns the populated resource, or nil when the entry is empty.
func (e EntryResource) Resource() Resource {
	switch {
	case e.Composition != nil:
		return e.Composition
	case e.Patient != nil:
		return e.Patient
	case e.Practitioner != nil:
		return e.Practitioner
	case e.Organization != nil:
		return e.Organization
	case e.Encounter != nil:
		return e.Encounter
	case e.Observation != nil:
		return e.Observation
	case e.Condition != nil:
		return e.Condition
	case e.AllergyIntolerance != nil:
		return e.AllergyIntolerance
	case e.MedicationRequest != nil:
		return e.MedicationRequest
	case e.ServiceRequest != nil:
		return e.ServiceRequest
	case e.ReferralRequest != nil:
		return e.ReferralRequest
	case e.DocumentReference != nil:
		return e.DocumentReference
	}
	return nil
}

func (e EntryResource) MarshalJSON() ([]byte, error) {
	if r := e.Resource(); r != nil {
		return json.Marshal(r)
	}
	return []byte("null"), nil
}
