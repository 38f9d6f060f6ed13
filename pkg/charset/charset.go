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

// Package charset resolves encoding selectors to concrete character
// encodings and provides the decode/encode codecs for them. Decoding is
// lossy-safe: byte sequences that cannot be decoded become U+FFFD instead
// of failing the run. Encoding is strict, so text that cannot be
// represented in the target encoding surfaces as an error.
package charset

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/saintfish/chardet"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// AutoDetect is the encoding selector that triggers statistical detection
// over the input bytes instead of a fixed named encoding.
const AutoDetect = "auto"

// 🎯 Charset is a resolved character encoding, usable for both reading the
// input file and writing the output file.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// Name returns the resolved encoding name (the selector as given, or the
// detector's guess when the selector was AutoDetect).
func (c *Charset) Name() string {
	return c.name
}

// 🏭 Resolve turns an encoding selector into a concrete Charset. A named
// selector is looked up in the IANA registry; AutoDetect runs a
// confidence-scored statistical guess over raw. Detection is best-effort by
// design: a caller who cannot tolerate mis-detection should pass an
// explicit encoding name.
func Resolve(ctx context.Context, selector string, raw []byte) (*Charset, error) {
	logger := zerolog.Ctx(ctx)

	name := selector
	if name == AutoDetect {
		best, err := chardet.NewTextDetector().DetectBest(raw)
		if err != nil {
			return nil, errors.Errorf("unable to automatically detect file encoding: %w", err)
		}
		if best == nil || best.Charset == "" {
			return nil, errors.Errorf("unable to automatically detect file encoding")
		}
		name = best.Charset
		logger.Info().
			Str("encoding", name).
			Int("confidence", best.Confidence).
			Msg("detected encoding")
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Errorf("looking up encoding %q: %w", name, err)
	}
	if enc == nil {
		// The IANA index knows some names it has no codec for.
		return nil, errors.Errorf("encoding %q is not supported", name)
	}

	return &Charset{name: name, enc: enc}, nil
}

// 📖 Decode converts raw input bytes to text. Undecodable sequences are
// replaced with U+FFFD rather than failing, so files with minor encoding
// irregularities remain usable.
func (c *Charset) Decode(raw []byte) (string, error) {
	decoded, err := c.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.Errorf("decoding input as %s: %w", c.name, err)
	}
	return string(decoded), nil
}

// ✍️ Encode converts text to bytes in the resolved encoding. Characters the
// target encoding cannot represent cause an error.
func (c *Charset) Encode(text string) ([]byte, error) {
	encoded, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, errors.Errorf("encoding output as %s: %w", c.name, err)
	}
	return encoded, nil
}
