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

// Device is the abstract output sink an Interface drives. It owns
// nothing about cells or styling -- only raw terminal I/O. Concrete
// implementations live in subpackages: vtdevice (a VT-parser-backed
// in-memory Device for tests) and ttydevice (a real terminal Device).
type Device interface {
	// Write appends bytes to the device's output buffer. May buffer
	// rather than write immediately; see Flush.
	Write(p []byte) (n int, err error)

	// Flush releases any buffered bytes to the underlying terminal.
	Flush() error

	// TerminalSize reports the device's current viewport dimensions
	// in columns and rows.
	TerminalSize() (Vector, error)

	// EnableRawMode disables line buffering and local echo.
	EnableRawMode() error

	// DisableRawMode restores the configuration in effect before
	// EnableRawMode.
	DisableRawMode() error

	// CursorPosition reports the cursor's current absolute position,
	// if the device supports querying it.
	CursorPosition() (Position, error)
}
