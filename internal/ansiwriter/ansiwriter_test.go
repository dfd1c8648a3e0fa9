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

package ansiwriter

import "testing"

func TestMoveToIsOneIndexed(t *testing.T) {
	got := string(MoveTo(0, 0))
	want := "\x1b[1;1H"
	if got != want {
		t.Fatalf("MoveTo(0,0) = %q, want %q", got, want)
	}
}

func TestMoveDownEmitsNewlines(t *testing.T) {
	got := string(MoveDown(3))
	want := "\n\n\n"
	if got != want {
		t.Fatalf("MoveDown(3) = %q, want %q", got, want)
	}
}

func TestMoveUpEmitsCSI(t *testing.T) {
	got := string(MoveUp(2))
	want := "\x1b[2A"
	if got != want {
		t.Fatalf("MoveUp(2) = %q, want %q", got, want)
	}
}

func TestMoveZeroIsNoBytes(t *testing.T) {
	if len(MoveUp(0)) != 0 {
		t.Fatalf("expected MoveUp(0) to emit nothing")
	}
	if len(MoveLeft(0)) != 0 {
		t.Fatalf("expected MoveLeft(0) to emit nothing")
	}
	if len(MoveRight(0)) != 0 {
		t.Fatalf("expected MoveRight(0) to emit nothing")
	}
}

func TestPrintStyledResetsBeforeApplying(t *testing.T) {
	code := 31
	got := string(PrintStyled("x", true, false, false, &code, nil, false, false))
	want := "\x1b[0;1;31mx"
	if got != want {
		t.Fatalf("PrintStyled = %q, want %q", got, want)
	}
}

func TestPrintStyledResetColorUsesDefaultCodes(t *testing.T) {
	got := string(PrintStyled("x", false, false, false, nil, nil, true, true))
	want := "\x1b[0;39;49mx"
	if got != want {
		t.Fatalf("PrintStyled with reset colors = %q, want %q", got, want)
	}
}

func TestEnterLeaveAlternateScreen(t *testing.T) {
	if string(EnterAlternateScreen()) != "\x1b[?1049h" {
		t.Fatalf("unexpected EnterAlternateScreen sequence")
	}
	if string(LeaveAlternateScreen()) != "\x1b[?1049l" {
		t.Fatalf("unexpected LeaveAlternateScreen sequence")
	}
}
