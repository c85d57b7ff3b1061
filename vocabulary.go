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

import "fmt"

// Vocabulary is the fixed, ordered set of valid category names, plus one
// reserved sentinel meaning "no finding". Category identity is exact,
// case-sensitive string equality; order determines matrix column
// placement. The sentinel is a valid parse outcome but is excluded from
// the category list and from all encodings.
//
// A Vocabulary is immutable once constructed.
type Vocabulary struct {
	categories []string
	sentinel   string
	index      map[string]int
}

// NewVocabulary creates a vocabulary from an ordered category list and a
// sentinel string. It rejects empty or duplicate categories and a
// sentinel that is blank or collides with a category.
func NewVocabulary(categories []string, sentinel string) (*Vocabulary, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if sentinel == "" {
		return nil, fmt.Errorf("labeleval: sentinel label must not be empty")
	}

	index := make(map[string]int, len(categories))
	ordered := make([]string, len(categories))
	for i, category := range categories {
		if category == "" {
			return nil, fmt.Errorf("labeleval: category %d is empty", i)
		}
		if category == sentinel {
			return nil, fmt.Errorf("labeleval: sentinel %q collides with a category", sentinel)
		}
		if _, exists := index[category]; exists {
			return nil, fmt.Errorf("labeleval: duplicate category %q", category)
		}
		index[category] = i
		ordered[i] = category
	}

	return &Vocabulary{
		categories: ordered,
		sentinel:   sentinel,
		index:      index,
	}, nil
}

// Categories returns the category names in vocabulary order.
func (v *Vocabulary) Categories() []string {
	out := make([]string, len(v.categories))
	copy(out, v.categories)
	return out
}

// Sentinel returns the reserved "no finding" label.
func (v *Vocabulary) Sentinel() string {
	return v.sentinel
}

// Size returns the number of categories, excluding the sentinel.
func (v *Vocabulary) Size() int {
	return len(v.categories)
}

// Contains reports whether label is a vocabulary category.
// The sentinel is not a category.
func (v *Vocabulary) Contains(label string) bool {
	_, ok := v.index[label]
	return ok
}

// Index returns the column position of label and whether it is a
// vocabulary category.
func (v *Vocabulary) Index(label string) (int, bool) {
	i, ok := v.index[label]
	return i, ok
}

// IsSentinel reports whether label is the reserved "no finding" label.
func (v *Vocabulary) IsSentinel(label string) bool {
	return label == v.sentinel
}
