// Package clipboard places text on the system clipboard.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrClipboard wraps every failure to hand text to the clipboard.
var ErrClipboard = errors.New("clipboard error")

// Writer copies text to a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// System writes through the platform clipboard utilities found by
// github.com/atotto/clipboard (pbcopy, xclip, xsel, wl-copy, Windows API).
type System struct{}

// NewSystem returns the default clipboard writer.
func NewSystem() *System {
	return &System{}
}

// Write implements Writer.
func (s *System) Write(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility available", ErrClipboard)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: failed to set clipboard contents: %w", ErrClipboard, err)
	}
	return nil
}

// Pipe writes by piping the text into an external command's stdin.
type Pipe struct {
	Command string
	Args    []string
}

// NewXsel returns a Pipe into `xsel -b -i`, the X11 clipboard selection.
func NewXsel() *Pipe {
	return &Pipe{Command: "xsel", Args: []string{"-b", "-i"}}
}

// Write implements Writer. The command is bound to ctx.
func (p *Pipe) Write(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, p.Command, p.Args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s: %w: %s", ErrClipboard, p.Command, err, msg)
		}
		return fmt.Errorf("%w: %s: %w", ErrClipboard, p.Command, err)
	}
	return nil
}

// New picks the xsel pipe when x11 is set, the system clipboard otherwise.
func New(x11 bool) Writer {
	if x11 {
		return NewXsel()
	}
	return NewSystem()
}
