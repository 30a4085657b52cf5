package fhir

import (
	"fmt"
	"html"
	"time"

	fhirmodel "github.com/openclins/clins-converter/internal/service/clins/adapters/fhir/model"
	"github.com/openclins/clins-converter/internal/service/clins/document"
	"github.com/openclins/clins-converter/internal/service/clins/validation"
)

const (
	xmlnsFHIR   = "http://hl7.org/fhir"
	systemLOINC = "http://loinc.org"

	// JP-CLINS v1.11.0 profiles
	profileBundleEReferral         = "http://jpfhir.jp/fhir/eReferral/StructureDefinition/JP_Bundle_eReferral"
	profileBundleEDischargeSummary = "http://jpfhir.jp/fhir/eDischargeSummary/StructureDefinition/JP_Bundle_eDischargeSummary"
	profileBundleECheckup          = "http://jpfhir.jp/fhir/eCheckupReport/StructureDefinition/JP_Bundle_eCheckupReport"
	profileCompEReferral           = "http://jpfhir.jp/fhir/eReferral/StructureDefinition/JP_Composition_eReferral"
	profileCompEDischargeSummary   = "http://jpfhir.jp/fhir/eDischargeSummary/StructureDefinition/JP_Composition_eDischargeSummary"
	profileCompECheckup            = "http://jpfhir.jp/fhir/eCheckupReport/StructureDefinition/JP_Composition_eCheckupReport"
	profileJPPatient               = "http://jpfhir.jp/fhir/core/StructureDefinition/JP_Patient"
	profileJPPractitioner          = "http://jpfhir.jp/fhir/core/StructureDefinition/JP_Practitioner"
	profileJPOrganization          = "http://jpfhir.jp/fhir/core/StructureDefinition/JP_Organization"
	profileJPEncounter             = "http://jpfhir.jp/fhir/core/StructureDefinition/JP_Encounter"

	// Document type discriminants (LOINC)
	loincEReferral         = "18761-7"
	loincEDischargeSummary = "18842-5"
	loincECheckup          = "11502-2"

	// Section codes (LOINC)
	sectionAllergies      = "48765-2"
	sectionMedicationUse  = "10160-0"
	sectionLabResults     = "30954-2"
	sectionProblemList    = "11450-4"
	sectionReferralReason = "42349-1"
	sectionCarePlan       = "18776-5"
	sectionDischargeDx    = "11535-2"
	sectionDischargeMeds  = "10183-2"
	sectionVitalSigns     = "8716-3"
	sectionAttachedDoc    = "55107-7"

	// JP code systems carried on section codings
	systemDrugYJ  = "urn:oid:1.2.392.100495.20.1.73"
	systemDrugHOT = "urn:oid:1.2.392.100495.20.1.74"
	systemJLAC10  = "urn:oid:1.2.392.200119.4.504"

	// License registries carried on author identifiers
	systemPhysicianLicense  = "urn:oid:1.2.392.100495.20.3.41"
	systemNurseLicense      = "urn:oid:1.2.392.100495.20.3.42"
	systemPharmacistLicense = "urn:oid:1.2.392.100495.20.3.43"

	systemBundleIdentifier = "http://jpfhir.jp/fhir/clins/Identifier/bundle"

	systemAllergyClinical   = "http://terminology.hl7.org/CodeSystem/allergyintolerance-clinical"
	systemConditionClinical = "http://terminology.hl7.org/CodeSystem/condition-clinical"
)

// resourceKind names the supporting clinical resource a recognized section
// code materializes.
type resourceKind int

const (
	kindNone resourceKind = iota
	kindAllergyIntolerance
	kindMedicationRequest
	kindObservation
	kindCondition
	kindServiceRequest
	kindReferralRequest
	kindDocumentReference
)

// profile configures one document flow: its type coding, JP-CLINS profile
// URLs, composition title and the section-code table.
type profile struct {
	docType            DocumentType
	typeCoding         fhirmodel.Coding
	title              string
	bundleProfile      string
	compositionProfile string
	sections           map[string]resourceKind
}

// baseSections holds the section codes every flow recognizes.
func baseSections() map[string]resourceKind {
	return map[string]resourceKind{
		sectionAllergies:     kindAllergyIntolerance,
		sectionMedicationUse: kindMedicationRequest,
		sectionLabResults:    kindObservation,
		sectionProblemList:   kindCondition,
		sectionAttachedDoc:   kindDocumentReference,
	}
}

func profileFor(docType DocumentType) (profile, bool) {
	switch docType {
	case DocumentTypeEReferral:
		sections := baseSections()
		sections[sectionReferralReason] = kindReferralRequest
		sections[sectionCarePlan] = kindServiceRequest
		return profile{
			docType:            docType,
			typeCoding:         loincCoding(loincEReferral, "Provider-unspecified referral note"),
			title:              "診療情報提供書",
			bundleProfile:      profileBundleEReferral,
			compositionProfile: profileCompEReferral,
			sections:           sections,
		}, true
	case DocumentTypeEDischargeSummary:
		sections := baseSections()
		sections[sectionDischargeDx] = kindCondition
		sections[sectionDischargeMeds] = kindMedicationRequest
		return profile{
			docType:            docType,
			typeCoding:         loincCoding(loincEDischargeSummary, "Discharge summary"),
			title:              "退院時サマリー",
			bundleProfile:      profileBundleEDischargeSummary,
			compositionProfile: profileCompEDischargeSummary,
			sections:           sections,
		}, true
	case DocumentTypeECheckup:
		sections := baseSections()
		sections[sectionVitalSigns] = kindObservation
		return profile{
			docType:            docType,
			typeCoding:         loincCoding(loincECheckup, "Conclusions Document"),
			title:              "健康診断結果報告書",
			bundleProfile:      profileBundleECheckup,
			compositionProfile: profileCompECheckup,
			sections:           sections,
		}, true
	}
	return profile{}, false
}

func loincCoding(code, display string) fhirmodel.Coding {
	return fhirmodel.Coding{
		System:  systemLOINC,
		Code:    fhirmodel.String(code),
		Display: fhirmodel.String(display),
	}
}

// Transformer maps an input document into a JP-CLINS document bundle. All
// three flows share the algorithm; the profile supplies what differs.
type Transformer struct {
	profile   profile
	assembler *Assembler
}

// NewTransformer returns the transformer for one document flow. A nil
// assembler gets the default uuid-backed one.
func NewTransformer(docType DocumentType, asm *Assembler) (*Transformer, error) {
	p, ok := profileFor(docType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, docType)
	}
	if asm == nil {
		asm = NewAssembler(nil)
	}
	return &Transformer{profile: p, assembler: asm}, nil
}

// Transform validates the document and builds the resource graph, delegating
// bundle identity and entry ordering to the assembler.
func (t *Transformer) Transform(doc document.Document) (fhirmodel.Bundle, error) {
	if problems := t.validateTopLevel(doc); len(problems) > 0 {
		return fhirmodel.Bundle{}, &ValidationFailure{Problems: problems}
	}
	if problems := t.validateSections(doc); len(problems) > 0 {
		return fhirmodel.Bundle{}, &ValidationFailure{Problems: problems}
	}

	comp := t.compositionFrom(doc)
	entries := []fhirmodel.EntryResource{
		{Composition: comp},
		{Patient: t.patientFrom(doc)},
		{Practitioner: t.practitionerFrom(doc)},
		{Organization: t.organizationFrom(doc)},
		{Encounter: t.encounterFrom(doc)},
	}

	for i, sec := range doc.Sections {
		kind := t.sectionKind(sec)
		if kind == kindNone {
			// Unrecognized section codes pass through as narrative-only
			// sections.
			continue
		}
		res, refValue := t.supportingResource(kind, sec, doc)
		comp.Section[i].Entry = append(comp.Section[i].Entry, fhirmodel.Reference{Reference: fhirmodel.String(refValue)})
		entries = append(entries, res)
	}

	return t.assembler.Assemble(t.profile.docType, doc.CreatedAt, entries, 0)
}

func (t *Transformer) validateTopLevel(doc document.Document) []string {
	var problems []string
	problems = appendReferenceProblem(problems, "patientReference", doc.PatientReference)
	problems = appendReferenceProblem(problems, "authorReference", doc.AuthorReference)
	problems = appendReferenceProblem(problems, "custodianReference", doc.CustodianReference)
	problems = appendReferenceProblem(problems, "encounter", doc.EncounterReference)

	switch doc.Status {
	case document.StatusFinal, document.StatusPreliminary:
	default:
		problems = append(problems, fmt.Sprintf("documentStatus: %q is not one of %q or %q",
			doc.Status, document.StatusFinal, document.StatusPreliminary))
	}
	if doc.CreatedAt.IsZero() {
		problems = append(problems, "createdAt: creation timestamp is required")
	}
	return problems
}

func appendReferenceProblem(problems []string, field, ref string) []string {
	if ref == "" {
		return append(problems, field+": required reference is missing")
	}
	if _, _, ok := document.SplitReference(ref); !ok {
		return append(problems, fmt.Sprintf("%s: %q is not a ResourceType/id reference", field, ref))
	}
	return problems
}

func (t *Transformer) validateSections(doc document.Document) []string {
	if len(doc.Sections) == 0 {
		return []string{"sections: at least one section is required"}
	}

	var problems []string
	for i, sec := range doc.Sections {
		if sec.Code == nil || len(sec.Code.Coding) == 0 {
			problems = append(problems, fmt.Sprintf("sections[%d].code: section code is required", i))
			continue
		}
		for _, coding := range sec.Code.Coding {
			if ok, reason := checkCodedValue(coding); !ok {
				problems = append(problems, fmt.Sprintf("sections[%d].code: %s", i, reason))
			}
		}
	}

	if doc.AuthorIdentifier != nil {
		if ok, reason := checkLicense(*doc.AuthorIdentifier); !ok {
			problems = append(problems, "authorIdentifier: "+reason)
		}
	}
	if c := doc.CustodianContact; c != nil {
		if c.Phone != "" {
			if ok, reason := validation.PhoneNumber(c.Phone); !ok {
				problems = append(problems, "custodianContact.phone: "+reason)
			}
		}
		if c.PostalCode != "" {
			if ok, reason := validation.PostalCode(c.PostalCode); !ok {
				problems = append(problems, "custodianContact.postalCode: "+reason)
			}
		}
	}
	return problems
}

// checkCodedValue applies the format validator matching a coding's system.
// Codings from unrecognized systems pass through unchecked; only code format
// is validated, never code meaning.
func checkCodedValue(c document.Coding) (bool, string) {
	switch c.System {
	case systemDrugYJ:
		return validation.DrugPriceCode(c.Code)
	case systemDrugHOT:
		return validation.DrugHotCode(c.Code)
	case systemJLAC10:
		return validation.LabTestCode(c.Code)
	}
	return true, ""
}

func checkLicense(id document.Identifier) (bool, string) {
	switch id.System {
	case systemPhysicianLicense:
		return validation.PhysicianLicense(id.Value)
	case systemNurseLicense:
		return validation.NurseLicense(id.Value)
	case systemPharmacistLicense:
		return validation.PharmacistLicense(id.Value)
	}
	return true, ""
}

func (t *Transformer) sectionKind(sec document.Section) resourceKind {
	if sec.Code == nil {
		return kindNone
	}
	for _, coding := range sec.Code.Coding {
		if coding.System != systemLOINC {
			continue
		}
		if kind, ok := t.profile.sections[coding.Code]; ok {
			return kind
		}
	}
	return kindNone
}

// ==============================
// Mapping helpers
// ==============================

func (t *Transformer) patientFrom(doc document.Document) *fhirmodel.Patient {
	_, id, _ := document.SplitReference(doc.PatientReference)
	return &fhirmodel.Patient{
		ID:   fhirmodel.String(id),
		Meta: meta(profileJPPatient),
	}
}

func (t *Transformer) practitionerFrom(doc document.Document) *fhirmodel.Practitioner {
	_, id, _ := document.SplitReference(doc.AuthorReference)
	out := &fhirmodel.Practitioner{
		ID:   fhirmodel.String(id),
		Meta: meta(profileJPPractitioner),
	}
	if doc.AuthorIdentifier != nil {
		out.Identifier = []fhirmodel.Identifier{{
			System: fhirmodel.String(doc.AuthorIdentifier.System),
			Value:  fhirmodel.String(doc.AuthorIdentifier.Value),
		}}
	}
	return out
}

func (t *Transformer) organizationFrom(doc document.Document) *fhirmodel.Organization {
	_, id, _ := document.SplitReference(doc.CustodianReference)
	out := &fhirmodel.Organization{
		ID:   fhirmodel.String(id),
		Meta: meta(profileJPOrganization),
	}
	if c := doc.CustodianContact; c != nil {
		if c.Phone != "" {
			out.Telecom = append(out.Telecom, fhirmodel.ContactPoint{
				System: "phone",
				Value:  fhirmodel.String(c.Phone),
				Use:    "work",
			})
		}
		if c.PostalCode != "" {
			out.Address = append(out.Address, fhirmodel.Address{
				PostalCode: fhirmodel.String(c.PostalCode),
				Country:    "JP",
			})
		}
	}
	return out
}

func (t *Transformer) encounterFrom(doc document.Document) *fhirmodel.Encounter {
	_, id, _ := document.SplitReference(doc.EncounterReference)
	return &fhirmodel.Encounter{
		ID:   fhirmodel.String(id),
		Meta: meta(profileJPEncounter),
	}
}

func (t *Transformer) compositionFrom(doc document.Document) *fhirmodel.Composition {
	sections := make([]fhirmodel.CompositionSection, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		sections = append(sections, fhirmodel.CompositionSection{
			Title: fhirmodel.String(sec.Title),
			Code:  concept(sec.Code),
			Text:  narrative(sec.Text),
		})
	}
	return &fhirmodel.Composition{
		Meta:      meta(t.profile.compositionProfile),
		Status:    fhirmodel.String(doc.Status),
		Type:      &fhirmodel.CodeableConcept{Coding: []fhirmodel.Coding{t.profile.typeCoding}},
		Subject:   ref(doc.PatientReference),
		Encounter: ref(doc.EncounterReference),
		Date:      fhirmodel.String(doc.CreatedAt.Format(time.RFC3339)),
		Author:    []fhirmodel.Reference{{Reference: fhirmodel.String(doc.AuthorReference)}},
		Title:     fhirmodel.String(t.profile.title),
		Custodian: ref(doc.CustodianReference),
		Section:   sections,
	}
}

func (t *Transformer) supportingResource(kind resourceKind, sec document.Section, doc document.Document) (fhirmodel.EntryResource, string) {
	id := t.assembler.NextID()
	subject := ref(doc.PatientReference)
	encounter := ref(doc.EncounterReference)
	code := concept(sec.Code)
	created := fhirmodel.String(doc.CreatedAt.Format(time.RFC3339))

	switch kind {
	case kindAllergyIntolerance:
		return fhirmodel.EntryResource{AllergyIntolerance: &fhirmodel.AllergyIntolerance{
			ID:             fhirmodel.String(id),
			ClinicalStatus: statusConcept(systemAllergyClinical, "active"),
			Code:           code,
			Patient:        subject,
			Encounter:      encounter,
		}}, "AllergyIntolerance/" + id
	case kindMedicationRequest:
		return fhirmodel.EntryResource{MedicationRequest: &fhirmodel.MedicationRequest{
			ID:         fhirmodel.String(id),
			Status:     "active",
			Intent:     "order",
			Medication: code,
			Subject:    subject,
			Encounter:  encounter,
		}}, "MedicationRequest/" + id
	case kindObservation:
		return fhirmodel.EntryResource{Observation: &fhirmodel.Observation{
			ID:                fhirmodel.String(id),
			Status:            "final",
			Code:              code,
			Subject:           subject,
			Encounter:         encounter,
			EffectiveDateTime: created,
			ValueString:       fhirmodel.String(sec.Text),
		}}, "Observation/" + id
	case kindCondition:
		return fhirmodel.EntryResource{Condition: &fhirmodel.Condition{
			ID:             fhirmodel.String(id),
			ClinicalStatus: statusConcept(systemConditionClinical, "active"),
			Code:           code,
			Subject:        subject,
			Encounter:      encounter,
		}}, "Condition/" + id
	case kindServiceRequest:
		return fhirmodel.EntryResource{ServiceRequest: &fhirmodel.ServiceRequest{
			ID:        fhirmodel.String(id),
			Status:    "active",
			Intent:    "order",
			Code:      code,
			Subject:   subject,
			Encounter: encounter,
		}}, "ServiceRequest/" + id
	case kindReferralRequest:
		res := &fhirmodel.ReferralRequest{
			ID:          fhirmodel.String(id),
			Status:      "active",
			Intent:      "order",
			Subject:     subject,
			Context:     encounter,
			Description: fhirmodel.String(sec.Text),
		}
		if code != nil {
			res.ReasonCode = []fhirmodel.CodeableConcept{*code}
		}
		return fhirmodel.EntryResource{ReferralRequest: res}, "ReferralRequest/" + id
	case kindDocumentReference:
		return fhirmodel.EntryResource{DocumentReference: &fhirmodel.DocumentReference{
			ID:          fhirmodel.String(id),
			Status:      "current",
			Type:        code,
			Subject:     subject,
			Description: fhirmodel.String(sec.Text),
		}}, "DocumentReference/" + id
	}
	return fhirmodel.EntryResource{}, ""
}

func meta(profileURL string) *fhirmodel.Meta {
	return &fhirmodel.Meta{Profile: []fhirmodel.String{fhirmodel.String(profileURL)}}
}

func ref(value string) *fhirmodel.Reference {
	return &fhirmodel.Reference{Reference: fhirmodel.String(value)}
}

func concept(c *document.CodeableConcept) *fhirmodel.CodeableConcept {
	if c == nil {
		return nil
	}
	out := &fhirmodel.CodeableConcept{Text: fhirmodel.String(c.Text)}
	for _, coding := range c.Coding {
		out.Coding = append(out.Coding, fhirmodel.Coding{
			System:  fhirmodel.String(coding.System),
			Code:    fhirmodel.String(coding.Code),
			Display: fhirmodel.String(coding.Display),
		})
	}
	return out
}

func statusConcept(system, code string) *fhirmodel.CodeableConcept {
	return &fhirmodel.CodeableConcept{
		Coding: []fhirmodel.Coding{{System: fhirmodel.String(system), Code: fhirmodel.String(code)}},
	}
}

// narrative wraps section text in the xhtml shape FHIR expects. Empty text is
// allowed and yields an empty div.
func narrative(text string) *fhirmodel.Narrative {
	return &fhirmodel.Narrative{
		Status: "generated",
		Div:    fhirmodel.String(`<div xmlns="http://www.w3.org/1999/xhtml">` + html.EscapeString(text) + `</div>`),
	}
}
