package fhir

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	fhirmodel "github.com/openclins/clins-converter/internal/service/clins/adapters/fhir/model"
)

// IDGenerator mints resource and bundle identifiers. The default is
// uuid-backed; tests inject a fixed sequence for reproducible fixtures.
type IDGenerator func() string

// Assembler collects transformer output into a single document bundle:
// identity, entry ordering and the bundle timestamp live here so the
// per-document transformers stay free of bundle-level invariants.
type Assembler struct {
	newID IDGenerator
}

func NewAssembler(gen IDGenerator) *Assembler {
	if gen == nil {
		gen = uuid.NewString
	}
	return &Assembler{newID: gen}
}

// NextID hands out one identifier, for transformers that must reference a
// resource before assembly.
func (a *Assembler) NextID() string {
	return a.newID()
}

// Assemble builds the final bundle. The composition becomes entry 0; the
// remaining entries keep the order they were produced in. References are
// recorded as provided — dangling references pass through unchanged.
func (a *Assembler) Assemble(docType DocumentType, createdAt time.Time, entries []fhirmodel.EntryResource, compositionIndex int) (fhirmodel.Bundle, error) {
	if compositionIndex < 0 || compositionIndex >= len(entries) {
		return fhirmodel.Bundle{}, fmt.Errorf("composition index %d out of range for %d entries", compositionIndex, len(entries))
	}
	if entries[compositionIndex].Composition == nil {
		return fhirmodel.Bundle{}, fmt.Errorf("entry %d is not a Composition", compositionIndex)
	}

	p, ok := profileFor(docType)
	if !ok {
		return fhirmodel.Bundle{}, fmt.Errorf("%w: %q", ErrUnknownDocumentType, docType)
	}

	ordered := make([]fhirmodel.EntryResource, 0, len(entries))
	ordered = append(ordered, entries[compositionIndex])
	for i, e := range entries {
		if i != compositionIndex {
			ordered = append(ordered, e)
		}
	}

	bundleID := fmt.Sprintf("jp-%s-bundle-%s", strings.ToLower(string(docType)), a.newID())
	bundle := fhirmodel.Bundle{
		ID:   fhirmodel.String(bundleID),
		Meta: meta(p.bundleProfile),
		Identifier: &fhirmodel.Identifier{
			System: systemBundleIdentifier,
			Value:  fhirmodel.String(bundleID),
		},
		Type:      "document",
		Timestamp: fhirmodel.String(createdAt.Format(time.RFC3339)),
	}

	for _, e := range ordered {
		res := e.Resource()
		if res == nil {
			return fhirmodel.Bundle{}, fmt.Errorf("bundle entry carries no resource")
		}
		if res.ResourceID() == "" {
			res.SetResourceID(a.newID())
		}
		bundle.Entry = append(bundle.Entry, fhirmodel.BundleEntry{
			FullURL:  fhirmodel.String(res.ResourceName() + "/" + res.ResourceID()),
			Resource: e,
		})
	}

	return bundle, nil
}
