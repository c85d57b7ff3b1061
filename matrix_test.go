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
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
)

// matrixCells flattens a matrix for comparison.
func matrixCells(m *Matrix) [][]int {
	cells := make([][]int, m.NumRows())
	for i := range cells {
		cells[i] = m.Row(i)
	}
	return cells
}

func TestEncodeSets(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B", "C"}, "None")

	sets := []LabelSet{
		NewLabelSet("A", "C"),
		NewLabelSet(),
		NewLabelSet("B"),
	}
	m := EncodeSets(sets, vocab)

	want := [][]int{
		{1, 0, 1},
		{0, 0, 0},
		{0, 1, 0},
	}
	if diff := cmp.Diff(want, matrixCells(m)); diff != "" {
		t.Errorf("EncodeSets() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, m.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeSetsRoundTrip(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B", "C"}, "None")

	for _, labels := range [][]string{
		{"A", "C"},
		{"B"},
		{"A", "B", "C"},
		{},
	} {
		set := NewLabelSet(labels...)
		m := EncodeSets([]LabelSet{set}, vocab)
		if got := m.LabelSet(0); !got.Equal(set) {
			t.Errorf("round trip of %v = %v, want %v", labels, got, set)
		}
	}
}

func TestEncodeSetsIgnoresForeignTokens(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B", "C"}, "None")

	// Tokens outside the vocabulary were already diverted to the unknown
	// channel; if one reaches the encoder anyway it contributes no bit.
	m := EncodeSets([]LabelSet{NewLabelSet("A", "Z")}, vocab)

	if diff := cmp.Diff([][]int{{1, 0, 0}}, matrixCells(m)); diff != "" {
		t.Errorf("EncodeSets() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeSetsNilSet(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B"}, "None")

	m := EncodeSets([]LabelSet{nil}, vocab)

	if diff := cmp.Diff([][]int{{0, 0}}, matrixCells(m)); diff != "" {
		t.Errorf("EncodeSets() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTable(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B", "C"}, "None")

	// Column order in the source does not matter; output columns always
	// follow vocabulary order. Extra columns are ignored.
	table := &Table{
		Header: []string{"id", "C", "A", "B"},
		Rows: [][]string{
			{"s1", "1", "1", "0"},
			{"s2", "0", "0", "0"},
			{"s3", "1", "0", "1"},
		},
	}

	m, err := EncodeTable(table, vocab)
	if err != nil {
		t.Fatalf("EncodeTable() failed: %v", err)
	}

	want := [][]int{
		{1, 0, 1},
		{0, 0, 0},
		{0, 1, 1},
	}
	if diff := cmp.Diff(want, matrixCells(m)); diff != "" {
		t.Errorf("EncodeTable() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTableMissingColumn(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B", "C"}, "None")

	table := &Table{
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "0"}},
	}

	_, err := EncodeTable(table, vocab)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("EncodeTable() error = %v, want *SchemaError", err)
	}
	if schemaErr.Column != "C" {
		t.Errorf("SchemaError.Column = %q, want %q", schemaErr.Column, "C")
	}
}

func TestEncodeTableCellValues(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A"}, "None")

	tests := []struct {
		cell string
		want int
	}{
		{"1", 1},
		{"0", 0},
		{"1.0", 1},
		{"0.0", 0},
		{"2", 1},
		{"true", 1},
		{"false", 0},
		{" 1 ", 1},
		{"", 0},
	}
	for _, tt := range tests {
		table := &Table{Header: []string{"A"}, Rows: [][]string{{tt.cell}}}
		m, err := EncodeTable(table, vocab)
		if err != nil {
			t.Errorf("EncodeTable(cell %q) failed: %v", tt.cell, err)
			continue
		}
		if got := m.At(0, 0); got != tt.want {
			t.Errorf("EncodeTable(cell %q) = %d, want %d", tt.cell, got, tt.want)
		}
	}
}

func TestEncodeTableBadCell(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A"}, "None")

	table := &Table{Header: []string{"A"}, Rows: [][]string{{"1"}, {"maybe"}}}
	_, err := EncodeTable(table, vocab)
	if err == nil {
		t.Fatalf("EncodeTable() with non-binary cell succeeded, want error")
	}
	if !strings.Contains(err.Error(), `column "A" row 2`) {
		t.Errorf("EncodeTable() error = %q, want it to name column and row", err)
	}
}

func TestEncodeTableShortRow(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B"}, "None")

	// Readers may surface rows with trailing cells trimmed; missing
	// cells count as 0.
	table := &Table{Header: []string{"A", "B"}, Rows: [][]string{{"1"}}}
	m, err := EncodeTable(table, vocab)
	if err != nil {
		t.Fatalf("EncodeTable() failed: %v", err)
	}
	if diff := cmp.Diff([][]int{{1, 0}}, matrixCells(m)); diff != "" {
		t.Errorf("EncodeTable() mismatch (-want +got):\n%s", diff)
	}
}

func TestAlign(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B"}, "None")

	two := EncodeSets([]LabelSet{NewLabelSet("A"), NewLabelSet("B")}, vocab)
	three := EncodeSets([]LabelSet{NewLabelSet(), NewLabelSet(), NewLabelSet()}, vocab)

	if err := Align(two, two); err != nil {
		t.Errorf("Align() of matched matrices = %v, want nil", err)
	}

	err := Align(two, three)
	var alignErr *AlignmentError
	if !errors.As(err, &alignErr) {
		t.Fatalf("Align() error = %v, want *AlignmentError", err)
	}
	if alignErr.TruthRows != 2 || alignErr.PredRows != 3 {
		t.Errorf("AlignmentError counts = (%d, %d), want (2, 3)", alignErr.TruthRows, alignErr.PredRows)
	}
	for _, count := range []string{"2", "3"} {
		if !strings.Contains(err.Error(), count) {
			t.Errorf("AlignmentError message %q does not name row count %s", err, count)
		}
	}
}

func TestAlignVocabularyMismatch(t *testing.T) {
	ab := mustVocabulary(t, []string{"A", "B"}, "None")
	ba := mustVocabulary(t, []string{"B", "A"}, "None")

	left := EncodeSets([]LabelSet{NewLabelSet("A")}, ab)
	right := EncodeSets([]LabelSet{NewLabelSet("A")}, ba)

	if err := Align(left, right); !errors.Is(err, ErrVocabularyMismatch) {
		t.Errorf("Align() error = %v, want ErrVocabularyMismatch", err)
	}
}

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix([]string{"A", "B"}, [][]int{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("NewMatrix() failed: %v", err)
	}
	if m.NumRows() != 2 || m.NumCols() != 2 {
		t.Errorf("NewMatrix() dimensions = (%d, %d), want (2, 2)", m.NumRows(), m.NumCols())
	}

	if _, err := NewMatrix([]string{"A", "B"}, [][]int{{1}}); err == nil {
		t.Errorf("NewMatrix() with ragged row succeeded, want error")
	}
	if _, err := NewMatrix([]string{"A"}, [][]int{{2}}); err == nil {
		t.Errorf("NewMatrix() with non-binary cell succeeded, want error")
	}
}

func TestWithoutRows(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B"}, "None")
	m := EncodeSets([]LabelSet{
		NewLabelSet("A"),
		NewLabelSet("B"),
		NewLabelSet("A", "B"),
	}, vocab)

	got := m.WithoutRows(mapset.NewSet(1))
	want := [][]int{
		{1, 0},
		{1, 1},
	}
	if diff := cmp.Diff(want, matrixCells(got)); diff != "" {
		t.Errorf("WithoutRows() mismatch (-want +got):\n%s", diff)
	}

	if got := m.WithoutRows(nil); got.NumRows() != 3 {
		t.Errorf("WithoutRows(nil) rows = %d, want 3", got.NumRows())
	}
	if got := m.WithoutRows(mapset.NewSet(99)); got.NumRows() != 3 {
		t.Errorf("WithoutRows(unknown row) rows = %d, want 3", got.NumRows())
	}
}

func TestMatrixImmutability(t *testing.T) {
	vocab := mustVocabulary(t, []string{"A", "B"}, "None")
	m := EncodeSets([]LabelSet{NewLabelSet("A")}, vocab)

	row := m.Row(0)
	row[1] = 1
	if m.At(0, 1) != 0 {
		t.Errorf("Row() returned a view into the matrix; want a copy")
	}

	labels := m.Labels()
	labels[0] = "mutated"
	if m.Labels()[0] != "A" {
		t.Errorf("Labels() returned a view into the matrix; want a copy")
	}
}
