package model

import "encoding/json"

type Composition struct {
	ID         String               `json:"id,omitempty" xml:"id,omitempty"`
	Meta       *Meta                `json:"meta,omitempty" xml:"meta,omitempty"`
	Identifier *Identifier          `json:"identifier,omitempty" xml:"identifier,omitempty"`
	Status     String               `json:"status,omitempty" xml:"status,omitempty"`
	Type       *CodeableConcept     `json:"type,omitempty" xml:"type,omitempty"`
	Subject    *Reference           `json:"subject,omitempty" xml:"subject,omitempty"`
	Encounter  *Reference           `json:"encounter,omitempty" xml:"encounter,omitempty"`
	Date       String               `json:"date,omitempty" xml:"date,omitempty"`
	Author     []Reference          `json:"author,omitempty" xml:"author,omitempty"`
	Title      String               `json:"title,omitempty" xml:"title,omitempty"`
	Custodian  *Reference           `json:"custodian,omitempty" xml:"custodian,omitempty"`
	Section    []CompositionSection `json:"section,omitempty" xml:"section,omitempty"`
}

func (c *Composition) ResourceName() string    { return "Composition" }
func (c *Composition) ResourceID() string      { return string(c.ID) }
func (c *Composition) SetResourceID(id string) { c.ID = String(id) }

func (c Composition) MarshalJSON() ([]byte, error) {
	type alias Composition
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"Composition", alias(c)})
}

type CompositionSection struct {
	Title String           `json:"title,omitempty" xml:"title,omitempty"`
	Code  *CodeableConcept `json:"code,omitempty" xml:"code,omitempty"`
	Text  *Narrative       `json:"text,omitempty" xml:"text,omitempty"`
	Entry []Reference      `json:"entry,omitempty" xml:"entry,omitempty"`
}

type Observation struct {
	ID                String            `json:"id,omitempty" xml:"id,omitempty"`
	Meta              *Meta             `json:"meta,omitempty" xml:"meta,omitempty"`
	Status            String            `json:"status,omitempty" xml:"status,omitempty"`
	Category          []CodeableConcept `json:"category,omitempty" xml:"category,omitempty"`
	Code              *CodeableConcept  `json:"code,omitempty" xml:"code,omitempty"`
	Subject           *Reference        `json:"subject,omitempty" xml:"subject,omitempty"`
	Encounter         *Reference        `json:"encounter,omitempty" xml:"encounter,omitempty"`
	EffectiveDateTime String            `json:"effectiveDateTime,omitempty" xml:"effectiveDateTime,omitempty"`
	ValueString       String            `json:"valueString,omitempty" xml:"valueString,omitempty"`
}

func (o *Observation) ResourceName() string    { return "Observation" }
func (o *Observation) ResourceID() string      { return string(o.ID) }
func (o *Observation) SetResourceID(id string) { o.ID = String(id) }

func (o Observation) MarshalJSON() ([]byte, error) {
	type alias Observation
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"Observation", alias(o)})
}

type Condition struct {
	ID             String            `json:"id,omitempty" xml:"id,omitempty"`
	Meta           *Meta             `json:"meta,omitempty" xml:"meta,omitempty"`
	ClinicalStatus *CodeableConcept  `json:"clinicalStatus,omitempty" xml:"clinicalStatus,omitempty"`
	Category       []CodeableConcept `json:"category,omitempty" xml:"category,omitempty"`
	Code           *CodeableConcept  `json:"code,omitempty" xml:"code,omitempty"`
	Subject        *Reference        `json:"subject,omitempty" xml:"subject,omitempty"`
	Encounter      *Reference        `json:"encounter,omitempty" xml:"encounter,omitempty"`
}

func (c *Condition) ResourceName() string    { return "Condition" }
func (c *Condition) ResourceID() string      { return string(c.ID) }
func (c *Condition) SetResourceID(id string) { c.ID = String(id) }

func (c Condition) MarshalJSON() ([]byte, error) {
	type alias Condition
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"Condition", alias(c)})
}

type AllergyIntolerance struct {
	ID             String           `json:"id,omitempty" xml:"id,omitempty"`
	Meta           *Meta            `json:"meta,omitempty" xml:"meta,omitempty"`
	ClinicalStatus *CodeableConcept `json:"clinicalStatus,omitempty" xml:"clinicalStatus,omitempty"`
	Code           *CodeableConcept `json:"code,omitempty" xml:"code,omitempty"`
	Patient        *Reference       `json:"patient,omitempty" xml:"patient,omitempty"`
	Encounter      *Reference       `json:"encounter,omitempty" xml:"encounter,omitempty"`
}

func (a *AllergyIntolerance) ResourceName() string    { return "AllergyIntolerance" }
func (a *AllergyIntolerance) ResourceID() string      { return string(a.ID) }
func (a *AllergyIntolerance) SetResourceID(id string) { a.ID = String(id) }

func (a AllergyIntolerance) MarshalJSON() ([]byte, error) {
	type alias AllergyIntolerance
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"AllergyIntolerance", alias(a)})
}

type MedicationRequest struct {
	ID         String           `json:"id,omitempty" xml:"id,omitempty"`
	Meta       *Meta            `json:"meta,omitempty" xml:"meta,omitempty"`
	Status     String           `json:"status,omitempty" xml:"status,omitempty"`
	Intent     String           `json:"intent,omitempty" xml:"intent,omitempty"`
	Medication *CodeableConcept `json:"medicationCodeableConcept,omitempty" xml:"medicationCodeableConcept,omitempty"`
	Subject    *Reference       `json:"subject,omitempty" xml:"subject,omitempty"`
	Encounter  *Reference       `json:"encounter,omitempty" xml:"encounter,omitempty"`
}

func (m *MedicationRequest) ResourceName() string    { return "MedicationRequest" }
func (m *MedicationRequest) ResourceID() string      { return string(m.ID) }
func (m *MedicationRequest) SetResourceID(id string) { m.ID = String(id) }

func (m MedicationRequest) MarshalJSON() ([]byte, error) {
	type alias MedicationRequest
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"MedicationRequest", alias(m)})
}

type ServiceRequest struct {
	ID        String           `json:"id,omitempty" xml:"id,omitempty"`
	Meta      *Meta            `json:"meta,omitempty" xml:"meta,omitempty"`
	Status    String           `json:"status,omitempty" xml:"status,omitempty"`
	Intent    String           `json:"intent,omitempty" xml:"intent,omitempty"`
	Code      *CodeableConcept `json:"code,omitempty" xml:"code,omitempty"`
	Subject   *Reference       `json:"subject,omitempty" xml:"subject,omitempty"`
	Encounter *Reference       `json:"encounter,omitempty" xml:"encounter,omitempty"`
}

func (s *ServiceRequest) ResourceName() string    { return "ServiceRequest" }
func (s *ServiceRequest) ResourceID() string      { return string(s.ID) }
func (s *ServiceRequest) SetResourceID(id string) { s.ID = String(id) }

func (s ServiceRequest) MarshalJSON() ([]byte, error) {
	type alias ServiceRequest
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"ServiceRequest", alias(s)})
}

type ReferralRequest struct {
	ID          String            `json:"id,omitempty" xml:"id,omitempty"`
	Meta        *Meta             `json:"meta,omitempty" xml:"meta,omitempty"`
	Status      String            `json:"status,omitempty" xml:"status,omitempty"`
	Intent      String            `json:"intent,omitempty" xml:"intent,omitempty"`
	Subject     *Reference        `json:"subject,omitempty" xml:"subject,omitempty"`
	Context     *Reference        `json:"context,omitempty" xml:"context,omitempty"`
	ReasonCode  []CodeableConcept `json:"reasonCode,omitempty" xml:"reasonCode,omitempty"`
	Description String            `json:"description,omitempty" xml:"description,omitempty"`
}

func (r *ReferralRequest) ResourceName() string    { return "ReferralRequest" }
func (r *ReferralRequest) ResourceID() string      { return string(r.ID) }
func (r *ReferralRequest) SetResourceID(id string) { r.ID = String(id) }

func (r ReferralRequest) MarshalJSON() ([]byte, error) {
	type alias ReferralRequest
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"ReferralRequest", alias(r)})
}

type DocumentReference struct {
	ID          String           `json:"id,omitempty" xml:"id,omitempty"`
	Meta        *Meta            `json:"meta,omitempty" xml:"meta,omitempty"`
	Status      String           `json:"status,omitempty" xml:"status,omitempty"`
	Type        *CodeableConcept `json:"type,omitempty" xml:"type,omitempty"`
	Subject     *Reference       `json:"subject,omitempty" xml:"subject,omitempty"`
	Description String           `json:"description,omitempty" xml:"description,omitempty"`
}

func (d *DocumentReference) ResourceName() string    { return "DocumentReference" }
func (d *DocumentReference) ResourceID() string      { return string(d.ID) }
func (d *DocumentReference) SetResourceID(id string) { d.ID = String(id) }

func (d DocumentReference) MarshalJSON() ([]byte, error) {
	type alias DocumentReference
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"DocumentReference", alias(d)})
}
