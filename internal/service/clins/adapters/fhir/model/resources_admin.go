package model

import "encoding/json"

type Patient struct {
	ID         String       `json:"id,omitempty" xml:"id,omitempty"`
	Meta       *Meta        `json:"meta,omitempty" xml:"meta,omitempty"`
	Identifier []Identifier `json:"identifier,omitempty" xml:"identifier,omitempty"`
	Name       []HumanName  `json:"name,omitempty" xml:"name,omitempty"`
	Gender     String       `json:"gender,omitempty" xml:"gender,omitempty"`
	BirthDate  String       `json:"birthDate,omitempty" xml:"birthDate,omitempty"`
}

func (p *Patient) ResourceName() string    { return "Patient" }
func (p *Patient) ResourceID() string      { return string(p.ID) }
func (p *Patient) SetResourceID(id string) { p.ID = String(id) }

func (p Patient) MarshalJSON() ([]byte, error) {
	type alias Patient
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"Patient", alias(p)})
}

type Practitioner struct {
	ID         String       `json:"id,omitempty" xml:"id,omitempty"`
	Meta       *Meta        `json:"meta,omitempty" xml:"meta,omitempty"`
	Identifier []Identifier `json:"identifier,omitempty" xml:"identifier,omitempty"`
	Name       []HumanName  `json:"name,omitempty" xml:"name,omitempty"`
}

func (p *Practitioner) ResourceName() string    { return "Practitioner" }
func (p *Practitioner) ResourceID() string      { return string(p.ID) }
func (p *Practitioner) SetResourceID(id string) { p.ID = String(id) }

func (p Practitioner) MarshalJSON() ([]byte, error) {
	type alias Practitioner
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"Practitioner", alias(p)})
}

type Organization struct {
	ID         String         `json:"id,omitempty" xml:"id,omitempty"`
	Meta       *Meta          `json:"meta,omitempty" xml:"meta,omitempty"`
	Identifier []Identifier   `json:"identifier,omitempty" xml:"identifier,omitempty"`
	Name       String         `json:"name,omitempty" xml:"name,omitempty"`
	Telecom    []ContactPoint `json:"telecom,omitempty" xml:"telecom,omitempty"`
	Address    []Address      `json:"address,omitempty" xml:"address,omitempty"`
}

func (o *Organization) ResourceName() string    { return "Organization" }
func (o *Organization) ResourceID() string      { return string(o.ID) }
func (o *Organization) SetResourceID(id string) { o.ID = String(id) }

func (o Organization) MarshalJSON() ([]byte, error) {
	type alias Organization
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"Organization", alias(o)})
}

type Encounter struct {
	ID              String       `json:"id,omitempty" xml:"id,omitempty"`
	Meta            *Meta        `json:"meta,omitempty" xml:"meta,omitempty"`
	Identifier      []Identifier `json:"identifier,omitempty" xml:"identifier,omitempty"`
	Status          String       `json:"status,omitempty" xml:"status,omitempty"`
	Class           *Coding      `json:"class,omitempty" xml:"class,omitempty"`
	Subject         *Reference   `json:"subject,omitempty" xml:"subject,omitempty"`
	Period          *Period      `json:"period,omitempty" xml:"period,omitempty"`
	ServiceProvider *Reference   `json:"serviceProvider,omitempty" xml:"serviceProvider,omitempty"`
}

func (e *Encounter) ResourceName() string    { return "Encounter" }
func (e *Encounter) ResourceID() string      { return string(e.ID) }
func (e *Encounter) SetResourceID(id string) { e.ID = String(id) }

func (e Encounter) MarshalJSON() ([]byte, error) {
	type alias Encounter
	return json.Marshal(struct {
		ResourceType string `json:"resourceType"`
		alias
	}{"Encounter", alias(e)})
}
