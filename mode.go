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

// Mode selects how an Interface positions itself in the terminal.
type Mode int

const (
	// Absolute mode takes over the full screen via the terminal's
	// alternate screen buffer, addressing cells with goto commands.
	Absolute Mode = iota

	// Relative mode renders at the bottom of the existing scrollback,
	// preserving prior buffer content, and addresses cells with
	// relative cursor motions.
	Relative
)

func (m Mode) String() string {
	if m == Absolute {
		return "absolute"
	}
	return "relative"
}
