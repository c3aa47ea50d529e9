package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/lookup/internal/core/ports"
)

// LogProcessor writes a debug line for every ended span.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor creates a LogProcessor writing to logger.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	var b strings.Builder
	fmt.Fprintf(&b, "span %s took %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Millisecond))
	for _, kv := range s.Attributes() {
		fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
	}
	if desc := s.Status().Description; desc != "" {
		fmt.Fprintf(&b, " error=%q", desc)
	}
	p.logger.Debug(b.String())
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(context.Context) error { return nil }

var _ sdktrace.SpanProcessor = (*LogProcessor)(nil)
