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

func TestPositionOrderingByRowThenColumn(t *testing.T) {
	a := NewPosition(5, 0)
	b := NewPosition(0, 1)

	if !a.Less(b) {
		t.Fatalf("expected %s < %s (row takes precedence over column)", a, b)
	}
	if b.Less(a) {
		t.Fatalf("expected %s not < %s", b, a)
	}
}

func TestPositionOrderingSameRow(t *testing.T) {
	a := NewPosition(1, 3)
	b := NewPosition(2, 3)

	if !a.Less(b) {
		t.Fatalf("expected %s < %s", a, b)
	}
	if a.Compare(b) != -1 {
		t.Fatalf("expected Compare(%s, %s) = -1", a, b)
	}
	if b.Compare(a) != 1 {
		t.Fatalf("expected Compare(%s, %s) = 1", b, a)
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected Compare(%s, %s) = 0", a, a)
	}
}

func TestPositionTranslateSaturatesAtZero(t *testing.T) {
	p := NewPosition(0, 0)
	got := p.Translate(-1, -5)

	if got.X() != 0 || got.Y() != 0 {
		t.Fatalf("expected translate to saturate at zero, got %s", got)
	}
}

func TestPositionTranslatePositive(t *testing.T) {
	p := NewPosition(3, 4)
	got := p.Translate(2, -1)

	if got.X() != 5 || got.Y() != 3 {
		t.Fatalf("expected (5, 3), got %s", got)
	}
}
