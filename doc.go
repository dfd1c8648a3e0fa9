// Copyright 2025 The TCell Authors
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

// Package ttyinterface is a differential terminal rendering engine.
// Callers stage text, styles, and cursor position against an
// uncommitted grid and call Apply to commit: the engine diffs the
// staged grid against what was last displayed and emits only the
// control sequences and characters needed to catch the terminal up.
//
// An Interface runs in one of two modes. Absolute mode takes over the
// full screen via the terminal's alternate buffer and addresses cells
// with goto-style cursor motions. Relative mode renders at the
// terminal's existing cursor position without disturbing scrollback,
// addressing cells with relative up/down/left/right motions.
//
// This package owns rendering only: it does not read input, track
// keys or mouse events, or provide a widget/layout framework. Callers
// drive it with an implementation of Device, such as ttydevice for a
// real terminal or vtdevice for tests against an in-memory VT100
// emulator.
package ttyinterface
