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

import "github.com/rivo/uniseg"

// GraphemeSegmenter splits text into the user-perceived characters
// (extended grapheme clusters, per Unicode UAX #29) that each occupy
// one grid cell.
type GraphemeSegmenter interface {
	Split(text string) []string
}

// uniseqSegmenter is the default GraphemeSegmenter, backed by
// github.com/rivo/uniseg's extended grapheme cluster implementation.
type uniseqSegmenter struct{}

func (uniseqSegmenter) Split(text string) []string {
	if text == "" {
		return nil
	}
	var clusters []string
	state := -1
	remaining := text
	for len(remaining) > 0 {
		var cluster string
		cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// defaultGraphemeSegmenter is shared by interfaces that don't supply
// their own via Config.
var defaultGraphemeSegmenter GraphemeSegmenter = uniseqSegmenter{}
