// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal wraps github.com/pkg/term/termios to put the controlling
// terminal into cbreak mode for the duration of a monitor session: input is
// delivered a key at a time, without waiting for a newline, and without the
// terminal echoing it back.
type terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

func newTerminal(input, output *os.File) (*terminal, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("monitor: terminal requires both an input and an output file")
	}

	t := &terminal{input: input, output: output}
	if err := termios.Tcgetattr(t.input.Fd(), &t.canAttr); err != nil {
		return nil, fmt.Errorf("monitor: reading terminal attributes: %w", err)
	}
	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)
	return t, nil
}

// print writes a formatted string to the terminal's output and flushes it.
func (t *terminal) print(s string, a ...interface{}) {
	fmt.Fprintf(t.output, s, a...)
	t.output.Sync()
}

// cbreakMode puts the terminal into cbreak mode: one key at a time, no
// local echo.
func (t *terminal) cbreakMode() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreakAttr)
}

// canonicalMode restores the terminal's original attributes, as recorded at
// newTerminal time.
func (t *terminal) canonicalMode() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr)
}

// readKey blocks for a single byte of input.
func (t *terminal) readKey() (byte, error) {
	buf := make([]byte, 1)
	if _, err := t.input.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ANSI escape sequences used to redraw the monitor's status display in
// place rather than scrolling the terminal one line per step.
const (
	csi       = "\x1b["
	cursorHome = csi + "1;1H"
	eraseDown  = csi + "J"
)
