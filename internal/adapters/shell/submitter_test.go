package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lookup/internal/adapters/shell"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var request = domain.DeleteRequest{
	APIURL:  "https://api.example.org",
	Target:  domain.PackageRef{Project: "openSUSE:Leap:42.3:SLE-workarounds", Package: "vim"},
	Message: "sourced from openSUSE:Factory",
}

// fakeOsc writes an executable script standing in for osc.
func fakeOsc(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "osc")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o700))
	return path
}

func TestArgs(t *testing.T) {
	assert.Equal(t, []string{
		"-A", "https://api.example.org",
		"dr", "-m", "sourced from openSUSE:Factory",
		"openSUSE:Leap:42.3:SLE-workarounds", "vim",
	}, shell.Args(request))

	noAPI := request
	noAPI.APIURL = ""
	assert.Equal(t, "dr", shell.Args(noAPI)[0])
}

func TestSubmitter_Success(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	osc := fakeOsc(t, `for a in "$@"; do echo "$a"; done > `+argsFile+"\necho 123456\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("123456").Times(1)

	id, err := shell.NewSubmitterWithCommand(log, osc).SubmitDeleteRequest(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestID("123456"), id)

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "-A\nhttps://api.example.org\ndr\n-m\nsourced from openSUSE:Factory\nopenSUSE:Leap:42.3:SLE-workarounds\nvim\n", string(recorded))
}

func TestSubmitter_UnrecognisedOutput(t *testing.T) {
	osc := fakeOsc(t, "echo done\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("done").Times(1)

	id, err := shell.NewSubmitterWithCommand(log, osc).SubmitDeleteRequest(context.Background(), request)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSubmitter_Failure(t *testing.T) {
	osc := fakeOsc(t, "echo 'Server returned an error: HTTP Error 403' >&2\nexit 1\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	_, err := shell.NewSubmitterWithCommand(log, osc).SubmitDeleteRequest(context.Background(), request)
	require.ErrorIs(t, err, domain.ErrRequestSubmitFailed)
}

func TestSubmitter_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	_, err := shell.NewSubmitterWithCommand(log, filepath.Join(t.TempDir(), "missing")).
		SubmitDeleteRequest(context.Background(), request)
	require.ErrorIs(t, err, domain.ErrRequestSubmitFailed)
}

func TestSubmitter_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).Times(1)

	dry := request
	dry.DryRun = true

	id, err := shell.NewSubmitterWithCommand(log, filepath.Join(t.TempDir(), "never-run")).SubmitDeleteRequest(context.Background(), dry)
	require.NoError(t, err)
	assert.Empty(t, id)
}
