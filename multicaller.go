package multicaller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/0xsequence/multicaller/artifact"
	"github.com/0xsequence/multicaller/encoder"
	"github.com/goware/logger"
)

// Result summarizes one run. Failures are reported on the output only, Run
// itself never fails.
type Result struct {
	Hashes  *artifact.HashTable
	Invoked bool
	Err     error
}

type Options struct {
	Directory string
	Encoder   *encoder.Encoder
	Logger    logger.Logger
}

// Run reads the dependency hashes under opts.Directory and, once all of them
// are known, encodes the multi contract caller constructor.
func Run(ctx context.Context, out io.Writer, opts Options) Result {
	log := opts.Logger
	if log == nil {
		log = logger.NewLogger(logger.LogLevel_WARN)
	}
	enc := opts.Encoder
	if enc == nil {
		enc = encoder.NewEncoder(opts.Directory, encoder.WithLogger(log))
	}

	hashes := artifact.Extract(opts.Directory, artifact.Specs, func(res artifact.Result) {
		switch {
		case res.Err != nil:
			fmt.Fprintf(out, "Error reading %s: %v\n", res.Path, res.Err)
		case res.Hash != "":
			fmt.Fprintf(out, "%s -- %s\n", res.Spec.Label, res.Hash)
		default:
			log.Debugf("multicaller: empty hash in %s, skipping", res.Path)
		}
	})

	result := Result{Hashes: hashes}
	if !hashes.Complete() {
		// TODO: surface an incomplete hash set through the exit status once callers rely on it.
		log.Debugf("multicaller: missing hashes for %s, not encoding", strings.Join(hashes.Missing(), ", "))
		return result
	}

	result.Invoked = true
	result.Err = enc.Encode(ctx, hashes)
	if result.Err != nil {
		fmt.Fprintf(out, "Command failed with error: %v\n", result.Err)
	} else {
		fmt.Fprintln(out, "Command executed successfully.")
	}
	return result
}
