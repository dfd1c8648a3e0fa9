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

import "github.com/mattn/go-runewidth"

// Cell is a single terminal grid cell: one grapheme cluster and an
// optional style. Two cells are equal iff both fields are equal;
// comparing equal cells must never mark a position dirty (see State).
type Cell struct {
	grapheme string
	style    *Style
	width    uint8
}

// newCell builds a cell for the given grapheme and optional style,
// pre-computing the grapheme's display width for informational use
// (see Cell.Width). The width does not affect grid indexing: every
// grapheme still occupies exactly one column (spec's acknowledged
// wide-grapheme gap).
func newCell(grapheme string, style *Style) Cell {
	w := runewidth.StringWidth(grapheme)
	if w < 1 {
		w = 1
	}
	return Cell{grapheme: grapheme, style: style, width: uint8(w)}
}

// Grapheme returns this cell's text content, a single extended
// grapheme cluster.
func (c Cell) Grapheme() string { return c.grapheme }

// Style returns the cell's style and whether one was set.
func (c Cell) Style() (Style, bool) {
	if c.style == nil {
		return Style{}, false
	}
	return *c.style, true
}

// Width reports the grapheme's measured display width (1 for most
// characters, 2 for e.g. CJK/emoji). This is informational only --
// the grid still indexes and wraps as if every cell were width 1.
func (c Cell) Width() uint8 { return c.width }

// Equal reports whether two cells have the same grapheme and style.
func (c Cell) Equal(other Cell) bool {
	if c.grapheme != other.grapheme {
		return false
	}
	if (c.style == nil) != (other.style == nil) {
		return false
	}
	if c.style != nil && !c.style.Equal(*other.style) {
		return false
	}
	return true
}
