package obs_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lookup/internal/adapters/obs"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) *http.Response
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req), nil
}

func newMockClient(handler func(req *http.Request) *http.Response) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func newTransport(t *testing.T, handler func(req *http.Request) *http.Response) *obs.Transport {
	t.Helper()
	return obs.NewTransportWithClient(
		"https://api.example.org/",
		obs.Credentials{User: "bot", Password: "secret"},
		quietLogger(t),
		newMockClient(handler),
		clockwork.NewRealClock(),
	)
}

func TestTransport_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotURL, gotUser, gotPass string
		tr := newTransport(t, func(req *http.Request) *http.Response {
			gotURL = req.URL.String()
			gotUser, gotPass, _ = req.BasicAuth()
			return respond(http.StatusOK, "<directory/>")
		})

		data, err := tr.Get(context.Background(), domain.NewResource("source", "openSUSE:Leap:42.3"))
		require.NoError(t, err)
		assert.Equal(t, "<directory/>", string(data))
		assert.Equal(t, "https://api.example.org/source/openSUSE:Leap:42.3", gotURL)
		assert.Equal(t, "bot", gotUser)
		assert.Equal(t, "secret", gotPass)
	})

	t.Run("Not found", func(t *testing.T) {
		tr := newTransport(t, func(_ *http.Request) *http.Response {
			return respond(http.StatusNotFound, "")
		})

		_, err := tr.Get(context.Background(), domain.NewResource("source", "nope"))
		require.ErrorIs(t, err, domain.ErrRemoteNotFound)
	})

	t.Run("Client error is not retried", func(t *testing.T) {
		var calls atomic.Int32
		tr := newTransport(t, func(_ *http.Request) *http.Response {
			calls.Add(1)
			return respond(http.StatusForbidden, "")
		})

		_, err := tr.Get(context.Background(), domain.NewResource("source", "secret"))
		require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
		assert.Contains(t, err.Error(), "HTTP 403")
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestTransport_Get_RetriesServerErrors(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		tr := newTransport(t, func(_ *http.Request) *http.Response {
			if calls.Add(1) < 3 {
				return respond(http.StatusServiceUnavailable, "")
			}
			return respond(http.StatusOK, "ok")
		})

		start := time.Now()
		data, err := tr.Get(context.Background(), domain.NewResource("source", "p"))
		require.NoError(t, err)

		assert.Equal(t, "ok", string(data))
		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, 2*obs.DefaultRetryDelay, time.Since(start), "one fixed delay per retry")
	})
}

func TestTransport_Get_RetriesExhausted(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		tr := newTransport(t, func(_ *http.Request) *http.Response {
			calls.Add(1)
			return respond(http.StatusBadGateway, "")
		})
		tr.MaxAttempts = 4

		_, err := tr.Get(context.Background(), domain.NewResource("source", "p"))
		require.ErrorIs(t, err, domain.ErrRemoteRetriesExhausted)
		assert.Equal(t, int32(4), calls.Load())
	})
}

func TestTransport_Get_CancelledDuringBackoff(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		tr := newTransport(t, func(_ *http.Request) *http.Response {
			return respond(http.StatusInternalServerError, "")
		})

		errCh := make(chan error, 1)
		go func() {
			_, err := tr.Get(ctx, domain.NewResource("source", "p"))
			errCh <- err
		}()

		synctest.Wait()
		cancel()

		require.ErrorIs(t, <-errCh, context.Canceled)
	})
}

func TestTransport_PutDelete(t *testing.T) {
	var methods []string
	var body string
	tr := newTransport(t, func(req *http.Request) *http.Response {
		methods = append(methods, req.Method)
		if req.Method == http.MethodPut {
			b, _ := io.ReadAll(req.Body)
			body = string(b)
		}
		return respond(http.StatusOK, "")
	})

	res := domain.NewResource("source", "p", "00Meta", "lookup.yml")
	require.NoError(t, tr.Put(context.Background(), res, []byte("---\nvim: FORK\n")))
	require.NoError(t, tr.Delete(context.Background(), res))

	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
	assert.Equal(t, "---\nvim: FORK\n", body)
}

func TestTransport_PutFailure(t *testing.T) {
	tr := newTransport(t, func(_ *http.Request) *http.Response {
		return respond(http.StatusInternalServerError, "")
	})

	err := tr.Put(context.Background(), domain.NewResource("source", "p"), []byte("x"))
	require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
}
