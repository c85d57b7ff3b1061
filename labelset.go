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

import mapset "github.com/deckarep/golang-set/v2"

// LabelSet holds the categories extracted from one input record.
// Duplicates collapse and extraction order is irrelevant.
type LabelSet = mapset.Set[string]

// NewLabelSet returns a LabelSet containing the given labels.
func NewLabelSet(labels ...string) LabelSet {
	return mapset.NewSet(labels...)
}

// Record is one prediction sample: the generated text together with its
// 1-based line number in the source file. Carrying the index through
// parsing keeps row correspondence recoverable even when neighboring
// records fail to decode and are skipped.
type Record struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}
