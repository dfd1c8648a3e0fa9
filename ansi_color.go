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

// ansiForegroundCodes and ansiBackgroundCodes map the closed Color
// enumeration to standard SGR parameter codes (30-37, 90-97 for
// foreground; 40-47, 100-107 for background).
var ansiForegroundCodes = map[Color]int{
	Black:       30,
	DarkRed:     31,
	DarkGreen:   32,
	DarkYellow:  33,
	DarkBlue:    34,
	DarkMagenta: 35,
	DarkCyan:    36,
	Grey:        37,
	DarkGrey:    90,
	Red:         91,
	Green:       92,
	Yellow:      93,
	Blue:        94,
	Magenta:     95,
	Cyan:        96,
	White:       97,
}

var ansiBackgroundCodes = map[Color]int{
	Black:       40,
	DarkRed:     41,
	DarkGreen:   42,
	DarkYellow:  43,
	DarkBlue:    44,
	DarkMagenta: 45,
	DarkCyan:    46,
	Grey:        47,
	DarkGrey:    100,
	Red:         101,
	Green:       102,
	Yellow:      103,
	Blue:        104,
	Magenta:     105,
	Cyan:        106,
	White:       107,
}

// foregroundSGR returns the SGR code for c, or false if c is Reset.
func foregroundSGR(c Color) (int, bool) {
	code, ok := ansiForegroundCodes[c]
	return code, ok
}

// backgroundSGR returns the SGR code for c, or false if c is Reset.
func backgroundSGR(c Color) (int, bool) {
	code, ok := ansiBackgroundCodes[c]
	return code, ok
}
