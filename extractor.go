// Copyright 2026 The labeleval Authors
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

package labeleval

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Extractor parses one free-text prediction into the set of recognized
// categories. The surface syntax the text generator emits is a fragile
// contract, so it lives behind this interface: swapping the marker
// convention must never touch the encoder or the metrics engine.
type Extractor interface {
	// Extract returns the vocabulary categories asserted by text together
	// with the distinct unrecognized tokens it encountered. Empty text
	// yields an empty LabelSet and no unknown tokens; that is the defined
	// behavior for a missing prediction, not an error.
	//
	// Extract has no side effects. Diagnostic reporting of unknown tokens
	// is the caller's responsibility, once per completed input file.
	Extract(text string, vocab *Vocabulary) (LabelSet, mapset.Set[string])
}

// DefaultMarker is the emphasis marker emitted by the upstream generator.
const DefaultMarker = "**"

// Emphasis extracts label assertions from lines framed by a fixed
// two-character emphasis marker, for example "**category**".
//
// A line is a label assertion if and only if, after trimming surrounding
// whitespace, it begins and ends with the marker and the marker-stripped,
// trimmed interior is non-empty. The interior is looked up in the
// vocabulary with exact, case-sensitive matching. The sentinel label is
// an explicit "no findings" assertion and contributes nothing; any other
// non-match goes to the unknown set. Lines without the marker are ignored
// entirely, as is a bare marker pair with an empty interior.
type Emphasis struct {
	// Marker frames an assertion on both sides. Empty means DefaultMarker.
	Marker string
}

// NewEmphasis creates an emphasis extractor with the default marker.
func NewEmphasis() *Emphasis {
	return &Emphasis{Marker: DefaultMarker}
}

// Extract implements Extractor.
func (e *Emphasis) Extract(text string, vocab *Vocabulary) (LabelSet, mapset.Set[string]) {
	labels := mapset.NewSet[string]()
	unknown := mapset.NewSet[string]()

	marker := e.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if len(line) < 2*len(marker) || !strings.HasPrefix(line, marker) || !strings.HasSuffix(line, marker) {
			continue
		}
		token := strings.TrimSpace(line[len(marker) : len(line)-len(marker)])
		if token == "" {
			continue
		}
		switch {
		case vocab.Contains(token):
			labels.Add(token)
		case vocab.IsSentinel(token):
			// Explicit "no findings" assertion; contributes no label.
		default:
			unknown.Add(token)
		}
	}
	return labels, unknown
}
