package model

import "encoding/xml"

// String is a FHIR primitive value. In JSON it renders as a plain string; in
// XML it renders as an element carrying a value attribute, the FHIR
// convention (<status value="final"/>).
type String string

func (s String) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "value"}, Value: string(s)})
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

type Meta struct {
	LastUpdated String   `json:"lastUpdated,omitempty" xml:"lastUpdated,omitempty"`
	Profile     []String `json:"profile,omitempty" xml:"profile,omitempty"`
}

type Identifier struct {
	Use    String `json:"use,omitempty" xml:"use,omitempty"`
	System String `json:"system,omitempty" xml:"system,omitempty"`
	Value  String `json:"value,omitempty" xml:"value,omitempty"`
}

type Coding struct {
	System  String `json:"system,omitempty" xml:"system,omitempty"`
	Code    String `json:"code,omitempty" xml:"code,omitempty"`
	Display String `json:"display,omitempty" xml:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty" xml:"coding,omitempty"`
	Text   String   `json:"text,omitempty" xml:"text,omitempty"`
}

type Reference struct {
	Reference  String      `json:"reference,omitempty" xml:"reference,omitempty"`
	Display    String      `json:"display,omitempty" xml:"display,omitempty"`
	Identifier *Identifier `json:"identifier,omitempty" xml:"identifier,omitempty"`
}

type Period struct {
	Start String `json:"start,omitempty" xml:"start,omitempty"`
	End   String `json:"end,omitempty" xml:"end,omitempty"`
}

type HumanName struct {
	Use    String   `json:"use,omitempty" xml:"use,omitempty"`
	Text   String   `json:"text,omitempty" xml:"text,omitempty"`
	Family String   `json:"family,omitempty" xml:"family,omitempty"`
	Given  []String `json:"given,omitempty" xml:"given,omitempty"`
}

type ContactPoint struct {
	System String `json:"system,omitempty" xml:"system,omitempty"`
	Value  String `json:"value,omitempty" xml:"value,omitempty"`
	Use    String `json:"use,omitempty" xml:"use,omitempty"`
}

type Address struct {
	Use        String `json:"use,omitempty" xml:"use,omitempty"`
	Text       String `json:"text,omitempty" xml:"text,omitempty"`
	PostalCode String `json:"postalCode,omitempty" xml:"postalCode,omitempty"`
	Country    String `json:"country,omitempty" xml:"country,omitempty"`
}

// Narrative holds the human-readable rendering of a resource or section.
type Narrative struct {
	Status String `json:"status,omitempty" xml:"status,omitempty"`
	Div    String `json:"div,omitempty" xml:"div,omitempty"`
}
