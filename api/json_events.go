package api

import (
	"fmt"
	"io"
	"sync"

	"github.com/nk-nigeria/blackjack-cli/entity"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// JSONEventWriter writes one JSON object per event, one per line.
type JSONEventWriter struct {
	mu        sync.Mutex
	out       io.Writer
	marshaler *protojson.MarshalOptions
	logger    *zap.Logger
}

func NewJSONEventWriter(out io.Writer, logger *zap.Logger) *JSONEventWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONEventWriter{
		out: out,
		marshaler: &protojson.MarshalOptions{
			UseProtoNames: true,
		},
		logger: logger,
	}
}

func (w *JSONEventWriter) Encode(e entity.Event) ([]byte, error) {
	msg, err := structpb.NewStruct(e.Fields())
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", e.Type, err)
	}
	return w.marshaler.Marshal(msg)
}

func (w *JSONEventWriter) Notify(e entity.Event) {
	data, err := w.Encode(e)
	if err != nil {
		w.logger.Error("encode event", zap.String("type", string(e.Type)), zap.Error(err))
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintln(w.out, string(data)); err != nil {
		w.logger.Error("write event", zap.String("type", string(e.Type)), zap.Error(err))
	}
}
