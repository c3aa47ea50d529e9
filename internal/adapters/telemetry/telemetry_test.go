package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/lookup/internal/adapters/telemetry"
	"go.trai.ch/lookup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "resolve")
	span.SetAttribute("package", "vim")
	span.SetAttribute("changed", true)
	span.SetAttribute("attempts", 3)
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "resolve", ended[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("package", "vim"),
		attribute.Bool("changed", true),
		attribute.Int("attempts", 3),
		attribute.String("other", "{1}"),
	}, ended[0].Attributes())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)

	_, span := tracer.Start(context.Background(), "resolve")
	span.RecordError(nil)
	span.RecordError(errors.New("remote request failed"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "remote request failed", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestOTelTracer_ChildSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)

	ctx, parent := tracer.Start(context.Background(), "crawl")
	_, child := tracer.Start(ctx, "resolve")
	child.End()
	parent.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestLogProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var line string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { line = msg })

	tracer := telemetry.NewOTelTracer("test-tracer", telemetry.NewLogProcessor(log))
	_, span := tracer.Start(context.Background(), "resolve")
	span.SetAttribute("package", "vim")
	span.RecordError(errors.New("boom"))
	span.End()

	assert.True(t, strings.HasPrefix(line, "span resolve took "), line)
	assert.Contains(t, line, "package=vim")
	assert.Contains(t, line, `error="boom"`)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "resolve")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
