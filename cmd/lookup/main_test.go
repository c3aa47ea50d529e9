package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/lookup/internal/adapters/telemetry"
	"go.trai.ch/lookup/internal/app"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	application := app.New(
		loader,
		mocks.NewMockServiceConnector(ctrl),
		mocks.NewMockRequestSubmitter(ctrl),
		log,
		telemetry.NewNoOpTracer(),
	)
	return &app.Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
		Tracer:       telemetry.NewNoOpTracer(),
	}, loader, log
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _ := newComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "lookup version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, loader, log := newComponents(ctrl)

	loader.EXPECT().Load("").Return(nil, domain.ErrConfigPathMissing)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	applied := false
	exitCode := run(context.Background(), []string{"run"}, new(bytes.Buffer), new(bytes.Buffer), provider, func(*app.App) {
		applied = true
	})

	assert.Equal(t, 1, exitCode)
	assert.True(t, applied)
}

// TestRun_RunsCleanup verifies that run releases the components once the command finished.
func TestRun_RunsCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _ := newComponents(ctrl)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

func TestShutdownTracer(t *testing.T) {
	t.Run("flushes an OpenTelemetry tracer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		components, _, _ := newComponents(ctrl)

		rec := tracetest.NewSpanRecorder()
		tracer := telemetry.NewOTelTracer("test", rec)
		components.Tracer = tracer

		shutdownTracer(components)

		_, span := tracer.Start(context.Background(), "late")
		span.End()
		assert.Empty(t, rec.Ended(), "spans ended after shutdown are dropped")
	})

	t.Run("logs shutdown failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		components, _, log := newComponents(ctrl)
		components.Tracer = failingTracer{NoOpTracer: telemetry.NewNoOpTracer()}

		var logged error
		log.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

		shutdownTracer(components)
		require.Error(t, logged)
		assert.Contains(t, logged.Error(), "failed to shut down tracer")
	})

	t.Run("ignores tracers without shutdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		components, _, _ := newComponents(ctrl)

		assert.NotPanics(t, func() { shutdownTracer(components) })
	})
}

type failingTracer struct {
	*telemetry.NoOpTracer
}

func (failingTracer) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("missing deadline")
	}
	return errors.New("exporter unavailable")
}
