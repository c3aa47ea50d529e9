package obs

import (
	"context"
	"fmt"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
)

const dryRunPreview = 200

// DryRunRemote reads through to the wrapped remote and logs writes and
// deletes instead of sending them.
type DryRunRemote struct {
	next   ports.Remote
	logger ports.Logger
}

// NewDryRunRemote wraps next so that nothing is modified on the server.
func NewDryRunRemote(next ports.Remote, logger ports.Logger) *DryRunRemote {
	return &DryRunRemote{next: next, logger: logger}
}

// Get forwards to the wrapped remote.
func (d *DryRunRemote) Get(ctx context.Context, res domain.Resource) ([]byte, error) {
	return d.next.Get(ctx, res)
}

// Put logs the write.
func (d *DryRunRemote) Put(_ context.Context, res domain.Resource, data []byte) error {
	preview := string(data)
	if len(preview) > dryRunPreview {
		preview = preview[:dryRunPreview]
	}
	d.logger.Debug(fmt.Sprintf("dryrun PUT %s %q", res, preview))
	return nil
}

// Delete logs the delete.
func (d *DryRunRemote) Delete(_ context.Context, res domain.Resource) error {
	d.logger.Debug(fmt.Sprintf("dryrun DELETE %s", res))
	return nil
}

var _ ports.Remote = (*DryRunRemote)(nil)
