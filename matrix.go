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
	"fmt"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Matrix is an immutable N x K multi-hot label matrix. Rows follow input
// record order and columns follow vocabulary order, so any two matrices
// built from the same vocabulary are cell-comparable once their row
// counts agree.
type Matrix struct {
	labels []string
	cells  [][]int
}

// NewMatrix creates a matrix from explicit 0/1 cells. Every row must have
// exactly one cell per label and every cell must be 0 or 1.
func NewMatrix(labels []string, cells [][]int) (*Matrix, error) {
	copied := make([][]int, len(cells))
	for i, row := range cells {
		if len(row) != len(labels) {
			return nil, fmt.Errorf("labeleval: row %d has %d cells, want %d", i, len(row), len(labels))
		}
		for j, cell := range row {
			if cell != 0 && cell != 1 {
				return nil, fmt.Errorf("labeleval: cell [%d][%d] is %d, want 0 or 1", i, j, cell)
			}
		}
		copied[i] = slices.Clone(row)
	}
	return &Matrix{labels: slices.Clone(labels), cells: copied}, nil
}

// EncodeSets builds a matrix from one LabelSet per record. For each
// record, each vocabulary category in fixed order yields 1 if present in
// the record's set and 0 otherwise. Tokens outside the vocabulary are
// ignored here: the extractor has already diverted them to the unknown
// channel and they must never reach the encoder.
func EncodeSets(sets []LabelSet, vocab *Vocabulary) *Matrix {
	categories := vocab.Categories()
	cells := make([][]int, len(sets))
	for i, set := range sets {
		row := make([]int, len(categories))
		for j, category := range categories {
			if set != nil && set.Contains(category) {
				row[j] = 1
			}
		}
		cells[i] = row
	}
	return &Matrix{labels: categories, cells: cells}
}

// EncodeTable builds a matrix from tabular ground truth holding one
// binary column per category. Column headers must match category strings
// exactly; a missing column fails with *SchemaError. Extra columns are
// ignored. Cells parse numerically with any nonzero value counting as 1;
// empty cells count as 0.
func EncodeTable(table *Table, vocab *Vocabulary) (*Matrix, error) {
	categories := vocab.Categories()
	columns := make([]int, len(categories))
	for j, category := range categories {
		idx := table.Column(category)
		if idx < 0 {
			return nil, &SchemaError{Column: category}
		}
		columns[j] = idx
	}

	cells := make([][]int, table.NumRows())
	for i, row := range table.Rows {
		encoded := make([]int, len(categories))
		for j, idx := range columns {
			var cell string
			if idx < len(row) {
				cell = row[idx]
			}
			bit, err := parseBit(cell)
			if err != nil {
				return nil, fmt.Errorf("labeleval: ground truth column %q row %d: %w", categories[j], i+1, err)
			}
			encoded[j] = bit
		}
		cells[i] = encoded
	}
	return &Matrix{labels: categories, cells: cells}, nil
}

// parseBit maps a cell to a binary label value. Spreadsheet and CSV
// sources surface the same logical 0/1 as "0", "1", "1.0", or boolean
// literals depending on how the file was produced.
func parseBit(cell string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		if v != 0 {
			return 1, nil
		}
		return 0, nil
	}
	if b, err := strconv.ParseBool(cell); err == nil {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cell %q is not a binary value", cell)
}

// Align verifies that two independently loaded matrices are comparable.
// It returns *AlignmentError when the row counts differ, and
// ErrVocabularyMismatch when the column labels differ or are reordered.
// Callers must run this check before scoring; a sample-count mismatch is
// a data-integrity error, not a metric-computation concern.
func Align(truth, pred *Matrix) error {
	if truth.NumRows() != pred.NumRows() {
		return &AlignmentError{TruthRows: truth.NumRows(), PredRows: pred.NumRows()}
	}
	if !slices.Equal(truth.labels, pred.labels) {
		return ErrVocabularyMismatch
	}
	return nil
}

// NumRows returns the number of samples.
func (m *Matrix) NumRows() int {
	return len(m.cells)
}

// NumCols returns the number of categories.
func (m *Matrix) NumCols() int {
	return len(m.labels)
}

// Labels returns the column labels in order.
func (m *Matrix) Labels() []string {
	return slices.Clone(m.labels)
}

// At returns the cell value at row i, column j.
func (m *Matrix) At(i, j int) int {
	return m.cells[i][j]
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []int {
	return slices.Clone(m.cells[i])
}

// LabelSet decodes row i back into the set of categories whose bit is 1.
func (m *Matrix) LabelSet(i int) LabelSet {
	set := mapset.NewSet[string]()
	for j, label := range m.labels {
		if m.cells[i][j] == 1 {
			set.Add(label)
		}
	}
	return set
}

// WithoutRows returns a copy of m with the given zero-based rows removed.
// The order of the remaining rows is preserved. Unknown row numbers are
// ignored.
func (m *Matrix) WithoutRows(drop mapset.Set[int]) *Matrix {
	if drop == nil || drop.Cardinality() == 0 {
		return m
	}
	kept := make([][]int, 0, len(m.cells))
	for i, row := range m.cells {
		if drop.Contains(i) {
			continue
		}
		kept = append(kept, slices.Clone(row))
	}
	return &Matrix{labels: slices.Clone(m.labels), cells: kept}
}
