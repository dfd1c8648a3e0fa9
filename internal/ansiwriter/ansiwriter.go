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

// Package ansiwriter encodes the command set an Interface drives a
// Device with into standard ANSI/VT100 control sequences.
//
// These sequences are hardcoded rather than looked up from a terminfo
// database: the reference implementation's own output devices
// (crossterm, termion) do the same, and a database-driven lookup would
// require carrying a much larger capability database for a command set
// this small and this portable.
package ansiwriter

import (
	"fmt"
	"strconv"
	"strings"
)

const esc = "\x1b["

// HideCursor returns the sequence that hides the terminal cursor.
func HideCursor() []byte { return []byte(esc + "?25l") }

// ShowCursor returns the sequence that shows the terminal cursor.
func ShowCursor() []byte { return []byte(esc + "?25h") }

// MoveTo returns the sequence that moves the cursor to the given
// zero-indexed column and row using an absolute goto.
func MoveTo(column, row uint16) []byte {
	return []byte(fmt.Sprintf("%s%d;%dH", esc, row+1, column+1))
}

// MoveUp returns the sequence that moves the cursor up n rows.
func MoveUp(n uint16) []byte {
	if n == 0 {
		return nil
	}
	return []byte(fmt.Sprintf("%s%dA", esc, n))
}

// MoveDown returns n newlines. Relative-mode downward motion uses
// newlines rather than a CSI sequence because moving past the bottom
// of the buffer must grow it -- a CSI cursor-down command clamps at
// the last existing row instead of scrolling.
func MoveDown(n uint16) []byte {
	return []byte(strings.Repeat("\n", int(n)))
}

// MoveLeft returns the sequence that moves the cursor left n columns.
func MoveLeft(n uint16) []byte {
	if n == 0 {
		return nil
	}
	return []byte(fmt.Sprintf("%s%dD", esc, n))
}

// MoveRight returns the sequence that moves the cursor right n columns.
func MoveRight(n uint16) []byte {
	if n == 0 {
		return nil
	}
	return []byte(fmt.Sprintf("%s%dC", esc, n))
}

// EnterAlternateScreen returns the sequence that switches to the
// terminal's alternate screen buffer.
func EnterAlternateScreen() []byte { return []byte(esc + "?1049h") }

// LeaveAlternateScreen returns the sequence that restores the
// terminal's primary screen buffer.
func LeaveAlternateScreen() []byte { return []byte(esc + "?1049l") }

// ClearAll returns the sequence that clears the entire viewport.
func ClearAll() []byte { return []byte(esc + "2J") }

// ClearLine returns the sequence that clears the cursor's entire
// current line.
func ClearLine() []byte { return []byte(esc + "2K") }

// ClearUntilNewline returns the sequence that clears from the cursor's
// current column to the end of the line.
func ClearUntilNewline() []byte { return []byte(esc + "K") }

// Print returns the plain, unstyled text to emit verbatim.
func Print(text string) []byte { return []byte(text) }

// PrintStyled returns the SGR (Select Graphic Rendition) parameters
// for the given style followed by the text, resetting attributes
// first so each styled print is self-contained and order-independent.
func PrintStyled(text string, bold, italic, underline bool, fg, bg *int, resetFg, resetBg bool) []byte {
	params := []string{"0"}

	if bold {
		params = append(params, "1")
	}
	if italic {
		params = append(params, "3")
	}
	if underline {
		params = append(params, "4")
	}
	if resetFg {
		params = append(params, "39")
	} else if fg != nil {
		params = append(params, strconv.Itoa(*fg))
	}
	if resetBg {
		params = append(params, "49")
	} else if bg != nil {
		params = append(params, strconv.Itoa(*bg))
	}

	var b strings.Builder
	b.WriteString(esc)
	b.WriteString(strings.Join(params, ";"))
	b.WriteByte('m')
	b.WriteString(text)
	return []byte(b.String())
}
