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

import "sort"

// State is a sparse cell grid: a position is present only if it has
// been written and not since cleared. It tracks which positions are
// "dirty" -- differ from what was last flushed to a Device -- so that
// a commit need only emit changed cells.
//
// The zero value is not ready for use; construct with newState.
type State struct {
	cells map[Position]Cell
	dirty map[Position]struct{}
}

// newState returns an empty state: no cells, nothing dirty.
func newState() *State {
	return &State{
		cells: make(map[Position]Cell),
		dirty: make(map[Position]struct{}),
	}
}

// clone returns a deep copy of the state, used when the Interface
// stages an alternate snapshot from the current one.
func (s *State) clone() *State {
	clone := &State{
		cells: make(map[Position]Cell, len(s.cells)),
		dirty: make(map[Position]struct{}, len(s.dirty)),
	}
	for pos, cell := range s.cells {
		clone.cells[pos] = cell
	}
	for pos := range s.dirty {
		clone.dirty[pos] = struct{}{}
	}
	return clone
}

// SetText installs the given grapheme at position with no style. If
// the resulting cell equals the one already stored there, the position
// is not marked dirty.
func (s *State) SetText(position Position, grapheme string) {
	s.handleCellUpdate(position, grapheme, nil)
}

// SetStyledText installs the given grapheme and style at position. If
// the resulting cell equals the one already stored there, the position
// is not marked dirty.
func (s *State) SetStyledText(position Position, grapheme string, style Style) {
	s.handleCellUpdate(position, grapheme, &style)
}

func (s *State) handleCellUpdate(position Position, grapheme string, style *Style) {
	newCell := newCell(grapheme, style)

	if existing, ok := s.cells[position]; ok && existing.Equal(newCell) {
		return
	}

	s.cells[position] = newCell
	s.dirty[position] = struct{}{}
}

// ClearLine removes every cell whose row equals y, marking each
// removed position dirty. Positions already absent are unaffected.
func (s *State) ClearLine(y uint16) {
	s.handleCellClears(func(p Position) bool { return p.Y() == y })
}

// ClearRestOfLine removes every cell on from's row at or after from's
// column, marking each removed position dirty.
func (s *State) ClearRestOfLine(from Position) {
	s.handleCellClears(func(p Position) bool { return p.Y() == from.Y() && p.X() >= from.X() })
}

// ClearRestOfInterface removes every cell at or after from in (Y, X)
// order, marking each removed position dirty.
func (s *State) ClearRestOfInterface(from Position) {
	s.handleCellClears(func(p Position) bool { return p.Compare(from) >= 0 })
}

func (s *State) handleCellClears(match func(Position) bool) {
	var toRemove []Position
	for pos := range s.cells {
		if match(pos) {
			toRemove = append(toRemove, pos)
		}
	}
	for _, pos := range toRemove {
		delete(s.cells, pos)
		s.dirty[pos] = struct{}{}
	}
}

// ClearDirty empties the dirty set without touching stored cells.
func (s *State) ClearDirty() {
	s.dirty = make(map[Position]struct{})
}

// DirtyEntry pairs a dirty position with its current cell, or no cell
// if the position has been cleared since the last flush.
type DirtyEntry struct {
	Position Position
	Cell     *Cell
}

// DirtyIter returns a consistent snapshot of the dirty set, ordered by
// (Y, X). Mutating the state concurrently with iteration is undefined,
// but since the snapshot is materialized eagerly, callers may freely
// mutate the state immediately after this call returns.
func (s *State) DirtyIter() []DirtyEntry {
	positions := make([]Position, 0, len(s.dirty))
	for pos := range s.dirty {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })

	entries := make([]DirtyEntry, 0, len(positions))
	for _, pos := range positions {
		entry := DirtyEntry{Position: pos}
		if cell, ok := s.cells[pos]; ok {
			c := cell
			entry.Cell = &c
		}
		entries = append(entries, entry)
	}
	return entries
}

// LastPosition returns the (Y, X)-greatest position present in the
// grid, or false if the grid is empty.
func (s *State) LastPosition() (Position, bool) {
	var last Position
	found := false
	for pos := range s.cells {
		if !found || last.Less(pos) {
			last = pos
			found = true
		}
	}
	return last, found
}
