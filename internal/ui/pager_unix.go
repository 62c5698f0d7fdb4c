//go:build unix

package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// ttyPath is the controlling terminal, used when neither stream is one
var ttyPath = "/dev/tty"

var errNoTerminal = errors.New("no terminal for the pager")

// newScreen opens the terminal the program itself reads keys from and draws
// on, so ov pages where the TUI runs even when that is not the process's
// controlling terminal.
func (c *pagerCommand) newScreen() (tcell.Screen, error) {
	var candidates []string
	for _, stream := range []any{c.stdin, c.stdout} {
		if f, ok := stream.(*os.File); ok {
			candidates = append(candidates, f.Name())
		}
	}
	candidates = append(candidates, ttyPath)

	var errs []error
	for _, dev := range candidates {
		tty, err := tcell.NewDevTtyFromDev(dev)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dev, err))
			continue
		}
		return tcell.NewTerminfoScreenFromTty(tty)
	}
	return nil, fmt.Errorf("%w: %w", errNoTerminal, errors.Join(errs...))
}
