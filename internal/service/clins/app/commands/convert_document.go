package commands

import (
	"context"
	"fmt"

	"github.com/openclins/clins-converter/internal/service/clins/adapters/fhir"
	"github.com/openclins/clins-converter/internal/service/clins/document"
)

type ConvertDocumentCommand struct {
	DocumentType string
	Format       string
	Pretty       bool
	Document     document.Document
}

type ConvertDocumentResult struct {
	Payload       string
	ContentType   string
	ResourceCount int
	BundleID      string
	DocumentType  string
}

type ConvertDocumentHandler interface {
	Handle(ctx context.Context, cmd ConvertDocumentCommand) (result ConvertDocumentResult, err error)
}

func NewConvertDocumentHandler(assembler *fhir.Assembler) ConvertDocumentHandler {
	return &convertDocumentCmdHandler{
		assembler: assembler,
	}
}

type convertDocumentCmdHandler struct {
	assembler *fhir.Assembler
}

func (h *convertDocumentCmdHandler) Handle(ctx context.Context, cmd ConvertDocumentCommand) (ConvertDocumentResult, error) {
	// Reject a bad format before doing any transformation work.
	if !fhir.IsValidFormat(cmd.Format) {
		return ConvertDocumentResult{}, &fhir.UnsupportedFormatError{Format: cmd.Format}
	}

	docType, ok := fhir.ParseDocumentType(cmd.DocumentType)
	if !ok {
		return ConvertDocumentResult{}, fmt.Errorf("%w: %q", fhir.ErrUnknownDocumentType, cmd.DocumentType)
	}

	transformer, err := fhir.NewTransformer(docType, h.assembler)
	if err != nil {
		return ConvertDocumentResult{}, err
	}

	bundle, err := transformer.Transform(cmd.Document)
	if err != nil {
		return ConvertDocumentResult{}, err
	}

	payload, contentType, err := fhir.Serialize(bundle, cmd.Format, cmd.Pretty)
	if err != nil {
		return ConvertDocumentResult{}, err
	}

	return ConvertDocumentResult{
		Payload:       payload,
		ContentType:   contentType,
		ResourceCount: len(bundle.Entry),
		BundleID:      string(bundle.ID),
		DocumentType:  string(fhir.ClassifyDocument(bundle)),
	}, nil
}
