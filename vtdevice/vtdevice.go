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

// Package vtdevice provides a VT-parser-backed, in-memory
// ttyinterface.Device for tests. Rather than recording raw bytes and
// asserting against them (brittle: both "emit full style per cell"
// and "track transitions" are conforming per spec), it feeds every
// write through github.com/hinshun/vt10x's terminal emulator and lets
// assertions read back the resulting screen contents, cursor, and
// style -- exactly what a real terminal would show.
package vtdevice

import (
	"sync"

	"github.com/hinshun/vt10x"

	ttyinterface "github.com/danielway/tty-interface"
)

// Device is an in-memory ttyinterface.Device backed by a VT100
// emulator. The zero value is not ready for use; construct with New.
type Device struct {
	mu      sync.Mutex
	term    vt10x.Terminal
	columns int
	rows    int
	raw     bool
}

// New returns a virtual device with the given viewport dimensions.
func New(columns, rows uint16) *Device {
	return &Device{
		term:    vt10x.New(vt10x.WithSize(int(columns), int(rows))),
		columns: int(columns),
		rows:    int(rows),
	}
}

// Write feeds bytes directly into the VT100 emulator. Unlike a real
// terminal device there is no separate transmission buffer: the
// emulator's state reflects every write immediately, and Flush is a
// no-op. This keeps test assertions simple without weakening the
// Device contract (flush still must be called for parity with real
// devices).
func (d *Device) Write(p []byte) (int, error) {
	return d.term.Write(p)
}

// Flush is a no-op: Write already applies changes synchronously.
func (d *Device) Flush() error { return nil }

// TerminalSize reports the configured viewport dimensions.
func (d *Device) TerminalSize() (ttyinterface.Vector, error) {
	return ttyinterface.NewVector(uint16(d.columns), uint16(d.rows)), nil
}

// EnableRawMode records that raw mode is active. There is no real
// terminal to configure.
func (d *Device) EnableRawMode() error {
	d.raw = true
	return nil
}

// DisableRawMode records that raw mode has been released.
func (d *Device) DisableRawMode() error {
	d.raw = false
	return nil
}

// RawMode reports whether EnableRawMode has been called without a
// matching DisableRawMode -- useful for tests asserting teardown.
func (d *Device) RawMode() bool { return d.raw }

// CursorPosition reports the emulator's current cursor position.
func (d *Device) CursorPosition() (ttyinterface.Position, error) {
	d.term.Lock()
	defer d.term.Unlock()

	cursor := d.term.Cursor()
	return ttyinterface.NewPosition(uint16(cursor.X), uint16(cursor.Y)), nil
}

// CursorVisible reports whether the emulator's cursor is currently
// shown.
func (d *Device) CursorVisible() bool {
	d.term.Lock()
	defer d.term.Unlock()
	return d.term.CursorVisible()
}

// Row returns the rendered text of row y, trimmed of no trailing
// content beyond the viewport width (trailing blanks are preserved as
// spaces, matching how a real terminal row would read back).
func (d *Device) Row(y int) string {
	d.term.Lock()
	defer d.term.Unlock()

	runes := make([]rune, d.columns)
	for x := 0; x < d.columns; x++ {
		ch := d.term.Cell(x, y).Char
		if ch == 0 {
			ch = ' '
		}
		runes[x] = ch
	}
	return string(runes)
}

// Contents returns every row's rendered text, row 0 first.
func (d *Device) Contents() []string {
	rows := make([]string, d.rows)
	for y := 0; y < d.rows; y++ {
		rows[y] = d.Row(y)
	}
	return rows
}

// CellStyle reports whether the cell at (x, y) is bold, italic, or
// underlined, and its foreground/background colors as vt10x reports
// them (vt10x.DefaultFG/DefaultBG for "inherit terminal default").
func (d *Device) CellStyle(x, y int) (bold, italic, underline bool, fg, bg vt10x.Color) {
	d.term.Lock()
	defer d.term.Unlock()

	const (
		modeUnderline = 1 << 1
		modeBold      = 1 << 2
		modeItalic    = 1 << 4
	)

	cell := d.term.Cell(x, y)
	return cell.Mode&modeBold != 0, cell.Mode&modeItalic != 0, cell.Mode&modeUnderline != 0, cell.FG, cell.BG
}
