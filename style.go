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

// Style describes text formatting for a cell: an optional foreground
// and background color, plus bold/italic/underline flags. A nil color
// pointer means "inherit the terminal's default"; Reset is a distinct
// color value meaning "explicitly emit a reset."
//
// Style is a value type: every setter returns a new Style rather than
// mutating the receiver.
type Style struct {
	foreground *Color
	background *Color
	bold       bool
	italic     bool
	underline  bool
}

// NewStyle returns the default style: no colors, no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy of this style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.foreground = &c
	return s
}

// ForegroundColor returns the style's foreground color, if set.
func (s Style) ForegroundColor() (Color, bool) {
	if s.foreground == nil {
		return 0, false
	}
	return *s.foreground, true
}

// Background returns a copy of this style with the given background color.
func (s Style) Background(c Color) Style {
	s.background = &c
	return s
}

// BackgroundColor returns the style's background color, if set.
func (s Style) BackgroundColor() (Color, bool) {
	if s.background == nil {
		return 0, false
	}
	return *s.background, true
}

// Bold returns a copy of this style with the bold flag set to on.
func (s Style) Bold(on bool) Style {
	s.bold = on
	return s
}

// IsBold reports whether the bold flag is set.
func (s Style) IsBold() bool { return s.bold }

// Italic returns a copy of this style with the italic flag set to on.
func (s Style) Italic(on bool) Style {
	s.italic = on
	return s
}

// IsItalic reports whether the italic flag is set.
func (s Style) IsItalic() bool { return s.italic }

// Underline returns a copy of this style with the underline flag set to on.
func (s Style) Underline(on bool) Style {
	s.underline = on
	return s
}

// IsUnderline reports whether the underline flag is set.
func (s Style) IsUnderline() bool { return s.underline }

// Equal reports whether two styles describe the same formatting.
func (s Style) Equal(other Style) bool {
	if s.bold != other.bold || s.italic != other.italic || s.underline != other.underline {
		return false
	}
	if (s.foreground == nil) != (other.foreground == nil) {
		return false
	}
	if s.foreground != nil && *s.foreground != *other.foreground {
		return false
	}
	if (s.background == nil) != (other.background == nil) {
		return false
	}
	if s.background != nil && *s.background != *other.background {
		return false
	}
	return true
}
