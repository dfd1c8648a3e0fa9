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

package ttyinterface

import (
	"log"

	"github.com/danielway/tty-interface/internal/ansiwriter"
)

// Interface is the differential rendering engine: callers stage cell
// writes and clears against an uncommitted alternate grid, then Apply
// diffs it against the committed current grid and drives the Device
// with the minimum set of control sequences needed to catch up.
//
// An Interface owns its State(s) exclusively and borrows the Device
// for its lifetime; it is not safe for concurrent use.
type Interface struct {
	device Device
	logger *log.Logger
	segmenter GraphemeSegmenter

	size Vector
	mode Mode

	current   *State
	alternate *State

	cursor       Position
	stagedCursor *Position
	cursorShown  bool

	closed bool
}

// NewAlternateInterface acquires full control of the terminal: it
// queries the device's size, enables raw mode, enters the alternate
// screen, clears it, hides the cursor, and parks the physical cursor
// at (0, 0). If any step fails, raw mode and the alternate screen are
// unwound before the error is returned.
func NewAlternateInterface(device Device, opts ...Option) (*Interface, error) {
	cfg := newConfig(opts)

	size, err := device.TerminalSize()
	if err != nil {
		return nil, terminalSizeError(err)
	}

	if err := device.EnableRawMode(); err != nil {
		return nil, ioError(err)
	}

	iface := &Interface{
		device:    device,
		logger:    cfg.logger,
		segmenter: cfg.segmenter,
		size:      size,
		mode:      Absolute,
		current:   newState(),
		cursor:    NewPosition(0, 0),
	}

	if _, err := device.Write(ansiwriter.EnterAlternateScreen()); err != nil {
		_ = device.DisableRawMode()
		return nil, ioError(err)
	}
	if _, err := device.Write(ansiwriter.ClearAll()); err != nil {
		_, _ = device.Write(ansiwriter.LeaveAlternateScreen())
		_ = device.DisableRawMode()
		return nil, ioError(err)
	}
	if _, err := device.Write(ansiwriter.HideCursor()); err != nil {
		_, _ = device.Write(ansiwriter.LeaveAlternateScreen())
		_ = device.DisableRawMode()
		return nil, ioError(err)
	}
	if _, err := device.Write(ansiwriter.MoveTo(0, 0)); err != nil {
		_, _ = device.Write(ansiwriter.LeaveAlternateScreen())
		_ = device.DisableRawMode()
		return nil, ioError(err)
	}
	if err := device.Flush(); err != nil {
		_, _ = device.Write(ansiwriter.LeaveAlternateScreen())
		_ = device.DisableRawMode()
		return nil, ioError(err)
	}

	iface.logger.Printf("tty-interface: entered absolute mode, size=%s", size)

	return iface, nil
}

// NewRelativeInterface acquires raw mode but renders starting from
// wherever the physical cursor currently is, without entering the
// alternate screen or clearing existing content. As content grows
// beyond the initial cursor position, subsequent motions are relative
// (up/down/left/right) so the viewport scrolls naturally with output.
func NewRelativeInterface(device Device, opts ...Option) (*Interface, error) {
	cfg := newConfig(opts)

	size, err := device.TerminalSize()
	if err != nil {
		return nil, terminalSizeError(err)
	}

	if err := device.EnableRawMode(); err != nil {
		return nil, ioError(err)
	}

	iface := &Interface{
		device:    device,
		logger:    cfg.logger,
		segmenter: cfg.segmenter,
		size:      size,
		mode:      Relative,
		current:   newState(),
		cursor:    NewPosition(0, 0),
	}

	iface.logger.Printf("tty-interface: entered relative mode, size=%s", size)

	return iface, nil
}

// Reset re-queries the device's terminal size. It does not reflow
// staged or committed content; callers that need to react to a resize
// must re-stage content themselves. This is the single resize-recovery
// hook the engine provides.
func (iface *Interface) Reset() error {
	iface.requireOpen()

	size, err := iface.device.TerminalSize()
	if err != nil {
		return terminalSizeError(err)
	}
	iface.size = size
	return nil
}

func (iface *Interface) requireOpen() {
	if iface.closed {
		panic("tty-interface: use of Interface after Exit")
	}
}

// ensureAlternate clones current into alternate on first mutation
// after a commit, giving repeated "stage nothing; apply" cycles O(1)
// cost.
func (iface *Interface) ensureAlternate() *State {
	if iface.alternate == nil {
		iface.alternate = iface.current.clone()
	}
	return iface.alternate
}

// Set stages grapheme-by-grapheme text starting at pos, wrapping to
// the next row when a write would exceed the last legal column.
func (iface *Interface) Set(pos Position, text string) {
	iface.requireOpen()
	iface.placeText(pos, text, nil)
}

// SetStyled stages styled grapheme-by-grapheme text starting at pos,
// wrapping to the next row when a write would exceed the last legal
// column.
func (iface *Interface) SetStyled(pos Position, text string, style Style) {
	iface.requireOpen()
	iface.placeText(pos, text, &style)
}

func (iface *Interface) placeText(pos Position, text string, style *Style) {
	state := iface.ensureAlternate()

	clusters := iface.segmenter.Split(text)

	column := pos.X()
	row := pos.Y()

	lastColumn := uint16(0)
	if iface.size.X() > 0 {
		lastColumn = iface.size.X() - 1
	}

	for _, grapheme := range clusters {
		target := NewPosition(column, row)
		if style != nil {
			state.SetStyledText(target, grapheme, *style)
		} else {
			state.SetText(target, grapheme)
		}

		if column >= lastColumn {
			column = 0
			row++
		} else {
			column++
		}
	}
}

// ClearLine stages removal of every cell in row y.
func (iface *Interface) ClearLine(y uint16) {
	iface.requireOpen()
	iface.ensureAlternate().ClearLine(y)
}

// ClearRestOfLine stages removal of every cell on from's row at or
// after from's column.
func (iface *Interface) ClearRestOfLine(from Position) {
	iface.requireOpen()
	iface.ensureAlternate().ClearRestOfLine(from)
}

// ClearRestOfInterface stages removal of every cell at or after from
// in (row, column) order.
func (iface *Interface) ClearRestOfInterface(from Position) {
	iface.requireOpen()
	iface.ensureAlternate().ClearRestOfInterface(from)
}

// SetCursor stages the cursor's position for the next Apply. Passing
// nil hides the cursor on commit.
func (iface *Interface) SetCursor(pos *Position) {
	iface.requireOpen()
	iface.ensureAlternate()
	iface.stagedCursor = pos
}

// Apply commits the staged alternate grid: it swaps alternate into
// current, computes the diff against what the device last displayed,
// and emits cursor motions, grapheme prints, style transitions, and
// erasures to catch the device up. A second Apply with nothing newly
// staged is a no-op.
func (iface *Interface) Apply() error {
	iface.requireOpen()

	if iface.alternate == nil {
		return nil
	}

	iface.current = iface.alternate
	iface.alternate = nil

	entries := iface.current.DirtyIter()

	if _, err := iface.device.Write(ansiwriter.HideCursor()); err != nil {
		return ioError(err)
	}

	for _, entry := range entries {
		if iface.cursor != entry.Position {
			if err := iface.moveCursorTo(entry.Position); err != nil {
				return err
			}
		}

		if entry.Cell != nil {
			if err := iface.writeCell(*entry.Cell); err != nil {
				return err
			}
		} else {
			if _, err := iface.device.Write(ansiwriter.Print(" ")); err != nil {
				return ioError(err)
			}
		}

		iface.cursor = iface.cursor.Translate(1, 0)
	}

	if iface.stagedCursor != nil {
		if err := iface.moveCursorTo(*iface.stagedCursor); err != nil {
			return err
		}
		if _, err := iface.device.Write(ansiwriter.ShowCursor()); err != nil {
			return ioError(err)
		}
		iface.cursorShown = true
	}

	if err := iface.device.Flush(); err != nil {
		return ioError(err)
	}

	iface.current.ClearDirty()

	return nil
}

func (iface *Interface) writeCell(cell Cell) error {
	style, hasStyle := cell.Style()
	if !hasStyle {
		style = NewStyle()
	}

	var fg, bg *int
	var resetFg, resetBg bool

	if color, ok := style.ForegroundColor(); ok {
		if color == Reset {
			resetFg = true
		} else if code, known := foregroundSGR(color); known {
			fg = &code
		}
	}
	if color, ok := style.BackgroundColor(); ok {
		if color == Reset {
			resetBg = true
		} else if code, known := backgroundSGR(color); known {
			bg = &code
		}
	}

	out := ansiwriter.PrintStyled(cell.Grapheme(), style.IsBold(), style.IsItalic(), style.IsUnderline(), fg, bg, resetFg, resetBg)
	if _, err := iface.device.Write(out); err != nil {
		return ioError(err)
	}
	return nil
}

// moveCursorTo emits the appropriate motion command for the
// Interface's mode and updates the tracked physical cursor.
func (iface *Interface) moveCursorTo(to Position) error {
	switch iface.mode {
	case Absolute:
		if _, err := iface.device.Write(ansiwriter.MoveTo(to.X(), to.Y())); err != nil {
			return ioError(err)
		}
	case Relative:
		dx := int(to.X()) - int(iface.cursor.X())
		dy := int(to.Y()) - int(iface.cursor.Y())

		if dx > 0 {
			if _, err := iface.device.Write(ansiwriter.MoveRight(uint16(dx))); err != nil {
				return ioError(err)
			}
		} else if dx < 0 {
			if _, err := iface.device.Write(ansiwriter.MoveLeft(uint16(-dx))); err != nil {
				return ioError(err)
			}
		}

		if dy > 0 {
			if _, err := iface.device.Write(ansiwriter.MoveDown(uint16(dy))); err != nil {
				return ioError(err)
			}
		} else if dy < 0 {
			if _, err := iface.device.Write(ansiwriter.MoveUp(uint16(-dy))); err != nil {
				return ioError(err)
			}
		}
	}

	iface.cursor = to
	return nil
}

// Exit tears down the Interface, restoring the terminal, and consumes
// it: any further call on this Interface panics. In absolute mode the
// cursor is shown and the alternate screen is left; in relative mode
// the cursor is moved below the last rendered content, preserving it
// in the scrollback, and a trailing newline is printed so the shell
// prompt lands on a fresh line.
func (iface *Interface) Exit() error {
	iface.requireOpen()
	defer func() { iface.closed = true }()

	switch iface.mode {
	case Absolute:
		if _, err := iface.device.Write(ansiwriter.ShowCursor()); err != nil {
			return ioError(err)
		}
		if _, err := iface.device.Write(ansiwriter.LeaveAlternateScreen()); err != nil {
			return ioError(err)
		}
		if err := iface.device.Flush(); err != nil {
			return ioError(err)
		}
		if err := iface.device.DisableRawMode(); err != nil {
			return ioError(err)
		}
	case Relative:
		if last, ok := iface.current.LastPosition(); ok {
			target := NewPosition(0, last.Y()+1)
			if err := iface.moveCursorTo(target); err != nil {
				return err
			}
		}
		if _, err := iface.device.Write(ansiwriter.ShowCursor()); err != nil {
			return ioError(err)
		}
		if err := iface.device.Flush(); err != nil {
			return ioError(err)
		}
		if err := iface.device.DisableRawMode(); err != nil {
			return ioError(err)
		}
		if _, err := iface.device.Write([]byte("\n")); err != nil {
			return ioError(err)
		}
		if err := iface.device.Flush(); err != nil {
			return ioError(err)
		}
	}

	iface.logger.Printf("tty-interface: exited %s mode", iface.mode)

	return nil
}
