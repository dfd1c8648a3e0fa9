// Copyright 2026 The Interface Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ttydevice provides a ttyinterface.Device backed by the
// process's real controlling terminal, via /dev/tty. It queries window
// size with an ioctl and puts the terminal into raw mode for the
// Interface's lifetime, restoring it on DisableRawMode.
package ttydevice

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	ttyinterface "github.com/danielway/tty-interface"
)

// Device is a ttyinterface.Device backed by /dev/tty.
type Device struct {
	file  *os.File
	out   *bufio.Writer
	saved *term.State
}

// Open opens /dev/tty for read and write. The returned Device is not
// yet in raw mode; EnableRawMode does that.
func Open() (*Device, error) {
	return OpenPath("/dev/tty")
}

// OpenPath opens the named tty device, useful for binding to a
// non-default controlling terminal.
func OpenPath(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		_ = f.Close()
		return nil, errors.New("ttydevice: not a terminal")
	}

	return &Device{file: f, out: bufio.NewWriter(f)}, nil
}

// Write buffers p for the next Flush.
func (d *Device) Write(p []byte) (int, error) {
	return d.out.Write(p)
}

// Flush writes any buffered bytes to the tty.
func (d *Device) Flush() error {
	return d.out.Flush()
}

// TerminalSize queries the kernel for the tty's current window size,
// falling back to the COLUMNS/LINES environment variables and then to
// 80x25 if the ioctl reports zero, matching a real terminal's own
// fallback behavior when run without a controlling window (e.g. under
// certain CI harnesses).
func (d *Device) TerminalSize() (ttyinterface.Vector, error) {
	ws, err := unix.IoctlGetWinsize(int(d.file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return ttyinterface.Vector{}, fmt.Errorf("ttydevice: query window size: %w", err)
	}

	width := int(ws.Col)
	height := int(ws.Row)

	if width == 0 {
		width, _ = strconv.Atoi(os.Getenv("COLUMNS"))
	}
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height, _ = strconv.Atoi(os.Getenv("LINES"))
	}
	if height == 0 {
		height = 25
	}

	return ttyinterface.NewVector(uint16(width), uint16(height)), nil
}

// EnableRawMode puts the tty into raw mode, saving the prior state so
// DisableRawMode can restore it.
func (d *Device) EnableRawMode() error {
	if d.saved != nil {
		return nil
	}
	saved, err := term.MakeRaw(int(d.file.Fd()))
	if err != nil {
		return fmt.Errorf("ttydevice: enable raw mode: %w", err)
	}
	d.saved = saved
	return nil
}

// DisableRawMode restores whatever terminal state preceded the last
// EnableRawMode call.
func (d *Device) DisableRawMode() error {
	if d.saved == nil {
		return nil
	}
	err := term.Restore(int(d.file.Fd()), d.saved)
	d.saved = nil
	if err != nil {
		return fmt.Errorf("ttydevice: disable raw mode: %w", err)
	}
	return nil
}

// CursorPosition is not independently queryable over this device
// without round-tripping a DSR escape sequence and parsing the
// response from the input stream, which is input-handling machinery
// this engine deliberately does not own. Callers should instead track
// the Interface's own last-known cursor position.
func (d *Device) CursorPosition() (ttyinterface.Position, error) {
	return ttyinterface.Position{}, errors.New("ttydevice: cursor position query is not supported; track the Interface's own cursor state instead")
}

// Close releases the underlying tty file. Callers should call
// DisableRawMode first if raw mode was enabled.
func (d *Device) Close() error {
	return d.file.Close()
}
