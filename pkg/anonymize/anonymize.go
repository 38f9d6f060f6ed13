// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package anonymize

import (
	"context"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Result contains the outcome of one anonymization pass
type Result struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of tokens replaced
	ReplacementCount int

	// OriginalText is the text before replacements
	OriginalText string

	// ModifiedText is the text after replacements
	ModifiedText string
}

// 🎯 Anonymizer replaces column-name tokens with numbered placeholders.
// Matching is always case-insensitive; this is a fixed design choice,
// not a configuration knob.
type Anonymizer struct {
	pattern *regexp.Regexp
	prefix  string
}

// 🏭 New compiles the pattern and returns an Anonymizer. An invalid
// pattern fails here, before any input has been read or matched.
func New(pattern, prefix string) (*Anonymizer, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, errors.Errorf("compiling column name pattern %q: %w", pattern, err)
	}
	return &Anonymizer{pattern: re, prefix: prefix}, nil
}

// Pattern returns the compiled pattern's source text.
func (a *Anonymizer) Pattern() string {
	return a.pattern.String()
}

// 📝 Anonymize scans text left to right for non-overlapping matches and
// replaces the kth match with prefix + k, k starting at 1. The counter is
// scoped to this call; zero matches returns the input unchanged.
func (a *Anonymizer) Anonymize(ctx context.Context, text string) *Result {
	logger := zerolog.Ctx(ctx)

	count := 0
	modified := a.pattern.ReplaceAllStringFunc(text, func(match string) string {
		count++
		return a.prefix + strconv.Itoa(count)
	})

	logger.Debug().
		Int("replacements", count).
		Str("prefix", a.prefix).
		Msg("anonymized column names")

	return &Result{
		WasModified:      count > 0,
		ReplacementCount: count,
		OriginalText:     text,
		ModifiedText:     modified,
	}
}
