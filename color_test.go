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

import "testing"

func TestColorStringKnown(t *testing.T) {
	if Red.String() != "Red" {
		t.Fatalf("expected 'Red', got %q", Red.String())
	}
	if Reset.String() != "Reset" {
		t.Fatalf("expected 'Reset', got %q", Reset.String())
	}
}

func TestForegroundSGRExcludesReset(t *testing.T) {
	if _, ok := foregroundSGR(Reset); ok {
		t.Fatalf("expected Reset to have no SGR foreground code")
	}
	code, ok := foregroundSGR(Red)
	if !ok || code != 91 {
		t.Fatalf("expected Red -> 91, got %d, ok=%v", code, ok)
	}
}

func TestBackgroundSGRExcludesReset(t *testing.T) {
	if _, ok := backgroundSGR(Reset); ok {
		t.Fatalf("expected Reset to have no SGR background code")
	}
	code, ok := backgroundSGR(Black)
	if !ok || code != 40 {
		t.Fatalf("expected Black -> 40, got %d, ok=%v", code, ok)
	}
}
