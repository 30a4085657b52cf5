package queries

import (
	"context"

	"github.com/openclins/clins-converter/internal/service/clins/adapters/fhir"
)

type GetCapabilitiesQuery struct {
}

type GetCapabilitiesResult struct {
	ImplementationGuide string   `json:"implementationGuide"`
	FHIRVersion         string   `json:"fhirVersion"`
	DocumentTypes       []string `json:"documentTypes"`
	Formats             []string `json:"formats"`
}

type GetCapabilitiesQueryHandler interface {
	Handle(ctx context.Context, query GetCapabilitiesQuery) (result GetCapabilitiesResult, err error)
}

func NewGetCapabilitiesQueryHandler() GetCapabilitiesQueryHandler {
	return &getCapabilitiesQueryHandler{}
}

type getCapabilitiesQueryHandler struct {
}

func (h *getCapabilitiesQueryHandler) Handle(ctx context.Context, query GetCapabilitiesQuery) (GetCapabilitiesResult, error) {
	types := make([]string, 0, len(fhir.DocumentTypes()))
	for _, dt := range fhir.DocumentTypes() {
		types = append(types, string(dt))
	}
	return GetCapabilitiesResult{
		ImplementationGuide: "JP-CLINS v1.11.0",
		FHIRVersion:         "4.0.1",
		DocumentTypes:       types,
		Formats:             []string{fhir.FormatJSON, fhir.FormatXML},
	}, nil
}
