package encoder_test

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/0xsequence/multicaller/artifact"
	"github.com/0xsequence/multicaller/encoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.err
}

func completeHashes() *artifact.HashTable {
	h := artifact.NewHashTable()
	h.MustAdd(artifact.LabelAccumulator, "0xAAA")
	h.MustAdd(artifact.LabelSubber, "0xBBB")
	h.MustAdd(artifact.LabelAdder, "0xCCC")
	return h
}

func TestNewCommand(t *testing.T) {
	args, err := encoder.NewCommand("target/ink", completeHashes())
	require.NoError(t, err)

	expected := []string{
		"contract", "encode", "--message", "new", "--args",
		"4444", "123", "0xAAA", "0xCCC", "0xBBB",
		"--", filepath.Join("target/ink", "multi_contract_caller.json"),
	}
	assert.Equal(t, expected, args)
	assert.Equal(t, []string{encoder.FirstArg, encoder.SecondArg}, args[5:7])

	again, err := encoder.NewCommand("target/ink", completeHashes())
	require.NoError(t, err)
	assert.Equal(t, args, again)
}

func TestNewCommand_Incomplete(t *testing.T) {
	h := artifact.NewHashTable()
	h.MustAdd(artifact.LabelAccumulator, "0xAAA")
	h.MustAdd(artifact.LabelAdder, "0xCCC")

	args, err := encoder.NewCommand("target/ink", h)
	assert.ErrorIs(t, err, encoder.ErrIncompleteHashes)
	assert.Nil(t, args)

	_, err = encoder.NewCommand("target/ink", nil)
	assert.ErrorIs(t, err, encoder.ErrIncompleteHashes)
}

func TestEncoder_Encode(t *testing.T) {
	runner := &fakeRunner{}
	enc := encoder.NewEncoder("out", encoder.WithRunner(runner))
	assert.Equal(t, "cargo", enc.Tool())

	err := enc.Encode(context.Background(), completeHashes())
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "cargo", runner.calls[0].name)
	assert.Equal(t, filepath.Join("out", "multi_contract_caller.json"), runner.calls[0].args[len(runner.calls[0].args)-1])
}

func TestEncoder_EncodeFailure(t *testing.T) {
	cause := errors.New("exit status 1")
	runner := &fakeRunner{err: cause}
	enc := encoder.NewEncoder("out", encoder.WithRunner(runner), encoder.WithTool("cargo-nightly"))

	err := enc.Encode(context.Background(), completeHashes())
	assert.ErrorIs(t, err, encoder.ErrCommandFailed)
	assert.ErrorIs(t, err, cause)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "cargo-nightly", runner.calls[0].name)
}

func TestEncoder_EncodeIncomplete(t *testing.T) {
	runner := &fakeRunner{}
	enc := encoder.NewEncoder("out", encoder.WithRunner(runner))

	err := enc.Encode(context.Background(), artifact.NewHashTable())
	assert.ErrorIs(t, err, encoder.ErrIncompleteHashes)
	assert.Empty(t, runner.calls)
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skipf("sh not available: %v", err)
	}

	var stdout, stderr bytes.Buffer
	runner := &encoder.ExecRunner{Stdout: &stdout, Stderr: &stderr}

	err := runner.Run(context.Background(), "sh", []string{"-c", "echo encoded; echo warn >&2"})
	require.NoError(t, err)
	assert.Equal(t, "encoded\n", stdout.String())
	assert.Equal(t, "warn\n", stderr.String())

	err = runner.Run(context.Background(), "sh", []string{"-c", "exit 1"})
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())

	err = runner.Run(context.Background(), "multicaller-no-such-tool", nil)
	assert.Error(t, err)
}
