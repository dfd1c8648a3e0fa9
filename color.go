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

// Color is a closed enumeration of the 16 standard terminal colors,
// plus Reset, which means "revert to the terminal's default color"
// rather than selecting a specific color.
type Color int

const (
	Black Color = iota
	DarkGrey
	Red
	DarkRed
	Green
	DarkGreen
	Yellow
	DarkYellow
	Blue
	DarkBlue
	Magenta
	DarkMagenta
	Cyan
	DarkCyan
	White
	Grey
	Reset
)

var colorNames = map[Color]string{
	Black:       "Black",
	DarkGrey:    "DarkGrey",
	Red:         "Red",
	DarkRed:     "DarkRed",
	Green:       "Green",
	DarkGreen:   "DarkGreen",
	Yellow:      "Yellow",
	DarkYellow:  "DarkYellow",
	Blue:        "Blue",
	DarkBlue:    "DarkBlue",
	Magenta:     "Magenta",
	DarkMagenta: "DarkMagenta",
	Cyan:        "Cyan",
	DarkCyan:    "DarkCyan",
	White:       "White",
	Grey:        "Grey",
	Reset:       "Reset",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "Unknown"
}
