// Package shell files build service requests through the osc command line client.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCommand is the osc binary looked up in PATH.
const DefaultCommand = "osc"

var requestIDPattern = regexp.MustCompile(`(\d+)\s*$`)

// Submitter implements ports.RequestSubmitter by running "osc deleterequest".
type Submitter struct {
	logger  ports.Logger
	command string
}

// NewSubmitter creates a Submitter running osc from PATH.
func NewSubmitter(logger ports.Logger) *Submitter {
	return NewSubmitterWithCommand(logger, DefaultCommand)
}

// NewSubmitterWithCommand creates a Submitter running the given osc binary.
func NewSubmitterWithCommand(logger ports.Logger, command string) *Submitter {
	return &Submitter{logger: logger, command: command}
}

// Args returns the osc arguments filing req.
func Args(req domain.DeleteRequest) []string {
	var args []string
	if req.APIURL != "" {
		args = append(args, "-A", req.APIURL)
	}
	return append(args, "dr", "-m", req.Message, req.Target.Project, req.Target.Package)
}

// SubmitDeleteRequest files req and returns the id osc reports. A dry run only logs the command.
func (s *Submitter) SubmitDeleteRequest(ctx context.Context, req domain.DeleteRequest) (domain.RequestID, error) {
	args := Args(req)
	if req.DryRun {
		s.logger.Debug(fmt.Sprintf("dryrun %s %s", s.command, strings.Join(args, " ")))
		return "", nil
	}

	//nolint:gosec // arguments are passed without a shell
	cmd := exec.CommandContext(ctx, s.command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		submitErr := zerr.Wrap(domain.ErrRequestSubmitFailed, err.Error())
		submitErr = zerr.With(submitErr, "target", req.Target.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			submitErr = zerr.With(submitErr, "exit_code", exitErr.ExitCode())
		}
		return "", zerr.With(submitErr, "stderr", strings.TrimSpace(stderr.String()))
	}

	out := strings.TrimSpace(string(output))
	if out != "" {
		s.logger.Info(out)
	}

	m := requestIDPattern.FindStringSubmatch(out)
	if m == nil {
		return "", nil
	}
	return domain.RequestID(m[1]), nil
}

var _ ports.RequestSubmitter = (*Submitter)(nil)
