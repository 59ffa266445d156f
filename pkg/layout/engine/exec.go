package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/archiview/pkg/cache"
)

// Exec lays out graphs by running the Graphviz "dot" binary.
type Exec struct {
	// Path is the binary to run. Empty means "dot" from PATH.
	Path string
}

// NewExec returns an engine running the dot binary at path ("" for PATH lookup).
func NewExec(path string) *Exec { return &Exec{Path: path} }

// Name returns "dot".
func (*Exec) Name() string { return "dot" }

func (e *Exec) binary() string {
	if e.Path != "" {
		return e.Path
	}
	return "dot"
}

// Available reports whether the binary can be found.
func (e *Exec) Available() bool {
	_, err := exec.LookPath(e.binary())
	return err == nil
}

// Layout pipes dot into "dot -Tplain" and returns its stdout.
// The process is killed when ctx is done. A process killed by any other
// signal reports a cache.Retryable error.
func (e *Exec) Layout(ctx context.Context, dot []byte) ([]byte, error) {
	bin := e.binary()
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("%s not found. Install Graphviz with:\n  macOS:  brew install graphviz\n  Linux:  apt install graphviz", bin)
	}

	cmd := exec.CommandContext(ctx, bin, "-T"+FormatPlain)
	cmd.Stdin = bytes.NewReader(dot)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		killed := errors.As(err, &exitErr) && exitErr.ExitCode() == -1
		err = fmt.Errorf("%s: %w: %s", bin, err, strings.TrimSpace(errBuf.String()))
		if killed {
			return nil, cache.Retryable(err)
		}
		return nil, err
	}
	return out.Bytes(), nil
}
