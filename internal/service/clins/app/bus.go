package app

import (
	"context"

	"github.com/openclins/clins-converter/internal/service/clins/app/commands"
	"github.com/openclins/clins-converter/internal/service/clins/app/queries"
)

type CommandBus interface {
	ConvertDocument(ctx context.Context, cmd commands.ConvertDocumentCommand) (commands.ConvertDocumentResult, error)
}

type QueryBus interface {
	GetCapabilities(ctx context.Context, q queries.GetCapabilitiesQuery) (queries.GetCapabilitiesResult, error)
}

type commandBus struct {
	convertDocument commands.ConvertDocumentHandler
}

type queryBus struct {
	getCapabilities queries.GetCapabilitiesQueryHandler
}

func NewCommandBus(
	convert commands.ConvertDocumentHandler,
) CommandBus {
	return &commandBus{
		convertDocument: convert,
	}
}

func NewQueryBus(
	capabilities queries.GetCapabilitiesQueryHandler,
) QueryBus {
	return &queryBus{
		getCapabilities: capabilities,
	}
}

func (b *commandBus) ConvertDocument(ctx context.Context, cmd commands.ConvertDocumentCommand) (commands.ConvertDocumentResult, error) {
	return b.convertDocument.Handle(ctx, cmd)
}

func (b *queryBus) GetCapabilities(ctx context.Context, q queries.GetCapabilitiesQuery) (queries.GetCapabilitiesResult, error) {
	return b.getCapabilities.Handle(ctx, q)
}
