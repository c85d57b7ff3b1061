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
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("labeleval: not found")

	// ErrInvalidInput indicates invalid input parameters.
	ErrInvalidInput = errors.New("labeleval: invalid input")

	// ErrEmptyVocabulary indicates a vocabulary with no categories.
	ErrEmptyVocabulary = errors.New("labeleval: vocabulary has no categories")

	// ErrVocabularyMismatch indicates two matrices were built from
	// different vocabularies and cannot be compared.
	ErrVocabularyMismatch = errors.New("labeleval: matrices were built from different vocabularies")
)

// SchemaError reports a ground-truth source that is missing a required
// vocabulary column. It is fatal: a valid matrix cannot be constructed.
type SchemaError struct {
	// Column is the vocabulary category with no matching column header.
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("labeleval: ground truth is missing category column %q", e.Column)
}

// ParseError reports a prediction record whose raw text failed structural
// decoding. It is recovered locally: the record is skipped, the error is
// collected as a diagnostic, and the pass continues.
type ParseError struct {
	// Line is the 1-based line number of the record in its source file.
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("labeleval: line %d: record is not a JSON object", e.Line)
}

// AlignmentError reports truth and prediction sources whose row counts
// differ after loading. It is fatal and must be detected before any
// metric is computed: metrics over misaligned rows are meaningless.
type AlignmentError struct {
	TruthRows int
	PredRows  int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("labeleval: truth has %d rows but predictions have %d rows", e.TruthRows, e.PredRows)
}
