package encoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/0xsequence/multicaller/artifact"
	"github.com/goware/logger"
	"github.com/goware/superr"
)

const (
	DefaultTool = "cargo"

	// constructor of the multi contract caller, followed by its two fixed numeric args
	ConstructorMessage = "new"
	FirstArg           = "4444"
	SecondArg          = "123"

	OutputFile = "multi_contract_caller.json"
)

var (
	ErrIncompleteHashes = errors.New("encoder: hash table is incomplete")
	ErrCommandFailed    = errors.New("encoder: command failed")
)

// NewCommand returns the argument list that encodes the multi contract caller
// constructor, without the tool name. Hashes are always passed as
// accumulator, adder, subber.
func NewCommand(directory string, hashes *artifact.HashTable) ([]string, error) {
	if hashes == nil || !hashes.Complete() {
		return nil, ErrIncompleteHashes
	}
	return []string{
		"contract", "encode",
		"--message", ConstructorMessage,
		"--args",
		FirstArg, SecondArg,
		hashes.MustGet(artifact.LabelAccumulator),
		hashes.MustGet(artifact.LabelAdder),
		hashes.MustGet(artifact.LabelSubber),
		"--", filepath.Join(directory, OutputFile),
	}, nil
}

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args []string) error
}

// ExecRunner runs commands as child processes, forwarding their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = &ExecRunner{}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command '%s %s' failed: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

type Encoder struct {
	directory string
	tool      string
	runner    Runner
	log       logger.Logger
}

func NewEncoder(directory string, options ...Option) *Encoder {
	e := &Encoder{
		directory: directory,
		tool:      DefaultTool,
		runner:    &ExecRunner{},
		log:       logger.NewLogger(logger.LogLevel_WARN),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *Encoder) Tool() string {
	return e.tool
}

// Encode runs the contract tool once and waits for it to exit.
func (e *Encoder) Encode(ctx context.Context, hashes *artifact.HashTable) error {
	args, err := NewCommand(e.directory, hashes)
	if err != nil {
		return err
	}

	e.log.Debugf("encoder: running %s %s", e.tool, strings.Join(args, " "))

	if err := e.runner.Run(ctx, e.tool, args); err != nil {
		return superr.New(ErrCommandFailed, err)
	}
	return nil
}
