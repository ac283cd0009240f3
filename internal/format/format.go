// Package format runs external code formatters over buffer text.
// A formatter is a text-to-text transform; the built-in backend pipes
// the text through a subprocess (stdin to stdout), the way gofmt-style
// tools expect. Formatters are selected by file extension through a
// Registry.
package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Errors returned by formatter operations.
var (
	ErrFormatFailed = errors.New("failed to format")
	ErrEmptyCommand = errors.New("empty formatter command")
)

// Formatter transforms source text, returning the formatted result.
type Formatter interface {
	Format(ctx context.Context, src string) (string, error)
}

// Command is a Formatter backed by an external process. The source is
// written to the process's stdin and the formatted output read from
// its stdout. A non-zero exit wraps ErrFormatFailed.
type Command struct {
	name string
	args []string
}

// NewCommand creates a command formatter from an argv-style slice.
func NewCommand(argv []string) (*Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, ErrEmptyCommand
	}
	return &Command{name: argv[0], args: argv[1:]}, nil
}

// Format pipes src through the external command.
func (c *Command) Format(ctx context.Context, src string) (string, error) {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdin = strings.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%w: %s: %s", ErrFormatFailed, c.name, msg)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrFormatFailed, c.name, err)
	}
	return stdout.String(), nil
}

// String returns the command line the formatter runs.
func (c *Command) String() string {
	if len(c.args) == 0 {
		return c.name
	}
	return c.name + " " + strings.Join(c.args, " ")
}
