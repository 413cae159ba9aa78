package packager

import (
	"context"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"github.com/nk-nigeria/blackjack-cli/usecase/processor"
	"go.uber.org/zap"
)

type processorPackagerKey struct{}

// ProcessorPackager carries what a state handler needs through its context.
type ProcessorPackager struct {
	state     *entity.TableState
	processor processor.IProcessor
	logger    *zap.Logger
	ctx       context.Context
}

func NewProcessorPackage(
	state *entity.TableState,
	processor processor.IProcessor,
	logger *zap.Logger,
	ctx context.Context,
) *ProcessorPackager {
	return &ProcessorPackager{
		state:     state,
		processor: processor,
		logger:    logger,
		ctx:       ctx,
	}
}

func (p ProcessorPackager) GetState() *entity.TableState {
	return p.state
}

func (p ProcessorPackager) GetProcessor() processor.IProcessor {
	return p.processor
}

func (p ProcessorPackager) GetLogger() *zap.Logger {
	return p.logger
}

func (p ProcessorPackager) GetContext() context.Context {
	return p.ctx
}

func GetProcessorPackagerFromContext(ctx context.Context) *ProcessorPackager {
	pkg, ok := ctx.Value(processorPackagerKey{}).(*ProcessorPackager)
	if !ok {
		return nil
	}
	return pkg
}

func GetContextWithProcessorPackager(procPkg *ProcessorPackager) context.Context {
	parent := procPkg.ctx
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, processorPackagerKey{}, procPkg)
}
