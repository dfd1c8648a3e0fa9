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
	"io"
	"log"
)

// Config holds construction-time options for an Interface. The zero
// value is a usable default: a discard logger and the standard
// grapheme segmenter.
type Config struct {
	logger    *log.Logger
	segmenter GraphemeSegmenter
}

// Option configures a Config.
type Option func(*Config)

// WithLogger directs low-volume diagnostic output (raw mode
// transitions, device setup/teardown) to the given logger. By default
// nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) { c.logger = logger }
}

// WithGraphemeSegmenter overrides the default (uniseg-based) grapheme
// cluster segmenter. Rarely needed; provided for testing and for
// callers with specialized text shaping needs.
func WithGraphemeSegmenter(segmenter GraphemeSegmenter) Option {
	return func(c *Config) { c.segmenter = segmenter }
}

func newConfig(opts []Option) Config {
	cfg := Config{
		logger:    log.New(io.Discard, "", 0),
		segmenter: defaultGraphemeSegmenter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}
	if cfg.segmenter == nil {
		cfg.segmenter = defaultGraphemeSegmenter
	}
	return cfg
}
