package obs

import (
	"net/http"
	"net/url"
	"os"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables holding the API credentials.
const (
	EnvAPIUser     = "LOOKUP_API_USER"
	EnvAPIPassword = "LOOKUP_API_PASSWORD"
)

// Connector implements ports.ServiceConnector.
type Connector struct {
	logger ports.Logger
	client *http.Client
	clock  clockwork.Clock
	getenv func(string) string
}

// NewConnector creates a Connector reading credentials from the environment.
func NewConnector(logger ports.Logger) *Connector {
	return NewConnectorWithClient(logger, &http.Client{Timeout: httpClientTimeout}, clockwork.NewRealClock(), os.Getenv)
}

// NewConnectorWithClient creates a Connector with a custom http client, clock and environment lookup.
func NewConnectorWithClient(
	logger ports.Logger,
	client *http.Client,
	clock clockwork.Clock,
	getenv func(string) string,
) *Connector {
	return &Connector{logger: logger, client: client, clock: clock, getenv: getenv}
}

// Connect builds the remote chain selected by opts and returns a typed service on top of it.
func (c *Connector) Connect(opts domain.ConnectOptions) (ports.BuildService, error) {
	u, err := url.Parse(opts.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		invalid := zerr.Wrap(domain.ErrConfigInvalid, "api url must be absolute")
		return nil, zerr.With(invalid, "apiurl", opts.APIURL)
	}

	creds := Credentials{
		User:     c.getenv(EnvAPIUser),
		Password: c.getenv(EnvAPIPassword),
	}

	var remote ports.Remote = NewTransportWithClient(opts.APIURL, creds, c.logger, c.client, c.clock)
	if opts.CacheRequests {
		remote = NewCachingRemote(remote)
	}
	if opts.DryRun {
		remote = NewDryRunRemote(remote, c.logger)
	}
	return NewService(remote), nil
}

var _ ports.ServiceConnector = (*Connector)(nil)
