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

import (
	"reflect"
	"testing"
)

func TestUniseqSegmenterSplitsASCII(t *testing.T) {
	got := uniseqSegmenter{}.Split("abc")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUniseqSegmenterKeepsFamilyEmojiAsOneCluster(t *testing.T) {
	// Man + ZWJ + Woman + ZWJ + Girl: a single extended grapheme cluster.
	family := "\U0001F468‍\U0001F469‍\U0001F467"
	got := uniseqSegmenter{}.Split(family)
	if len(got) != 1 {
		t.Fatalf("expected the ZWJ-joined family emoji to form 1 grapheme cluster, got %d: %v", len(got), got)
	}
}

func TestUniseqSegmenterEmptyString(t *testing.T) {
	got := uniseqSegmenter{}.Split("")
	if got != nil {
		t.Fatalf("expected nil clusters for empty input, got %v", got)
	}
}
