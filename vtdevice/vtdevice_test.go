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

package vtdevice

import "testing"

func TestDeviceWritesAreVisibleInContents(t *testing.T) {
	d := New(10, 3)

	if _, err := d.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}

	row := d.Row(0)
	if row[:5] != "hello" {
		t.Fatalf("expected row to start with 'hello', got %q", row)
	}
}

func TestDeviceTerminalSize(t *testing.T) {
	d := New(80, 24)
	size, err := d.TerminalSize()
	if err != nil {
		t.Fatalf("TerminalSize: %v", err)
	}
	if size.X() != 80 || size.Y() != 24 {
		t.Fatalf("expected 80x24, got %s", size)
	}
}

func TestDeviceRawModeTracking(t *testing.T) {
	d := New(10, 3)
	if d.RawMode() {
		t.Fatalf("expected raw mode off by default")
	}
	if err := d.EnableRawMode(); err != nil {
		t.Fatalf("EnableRawMode: %v", err)
	}
	if !d.RawMode() {
		t.Fatalf("expected raw mode on after EnableRawMode")
	}
	if err := d.DisableRawMode(); err != nil {
		t.Fatalf("DisableRawMode: %v", err)
	}
	if d.RawMode() {
		t.Fatalf("expected raw mode off after DisableRawMode")
	}
}

func TestDeviceCursorMotion(t *testing.T) {
	d := New(10, 3)

	if _, err := d.Write([]byte("\x1b[3;5H")); err != nil {
		t.Fatalf("write: %v", err)
	}

	pos, err := d.CursorPosition()
	if err != nil {
		t.Fatalf("CursorPosition: %v", err)
	}
	if pos.X() != 4 || pos.Y() != 2 {
		t.Fatalf("expected cursor at (4, 2), got %s", pos)
	}
}

func TestDeviceCursorVisibility(t *testing.T) {
	d := New(10, 3)

	if _, err := d.Write([]byte("\x1b[?25l")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if d.CursorVisible() {
		t.Fatalf("expected cursor hidden after DECTCEM reset")
	}

	if _, err := d.Write([]byte("\x1b[?25h")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !d.CursorVisible() {
		t.Fatalf("expected cursor shown after DECTCEM set")
	}
}

func TestDeviceCellStyleBold(t *testing.T) {
	d := New(10, 3)

	if _, err := d.Write([]byte("\x1b[1mx")); err != nil {
		t.Fatalf("write: %v", err)
	}

	bold, italic, underline, _, _ := d.CellStyle(0, 0)
	if !bold {
		t.Fatalf("expected bold cell")
	}
	if italic || underline {
		t.Fatalf("expected only bold to be set")
	}
}
