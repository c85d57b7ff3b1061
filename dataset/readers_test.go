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

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/shrlab/labeleval"
)

// writeSheet writes one worksheet of rows into a new spreadsheet file.
func writeSheet(t *testing.T, path, sheet string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("NewSheet(%q) error = %v", sheet, err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName() error = %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow() error = %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs(%q) error = %v", path, err)
	}
}

func TestXLSXReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.xlsx")
	writeSheet(t, path, "Sheet1", [][]any{
		{"id", "A", "B", "C"},
		{"s1", 1, 0, 1},
		{"s2", 0, 0, 0},
	})

	table, err := (&XLSXReader{}).ReadTable(path, nil)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}

	want := &labeleval.Table{
		Header: []string{"id", "A", "B", "C"},
		Rows: [][]string{
			{"s1", "1", "0", "1"},
			{"s2", "0", "0", "0"},
		},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("ReadTable() mismatch (-want +got):\n%s", diff)
	}
}

func TestXLSXReaderPadsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.xlsx")
	// Trailing empty cells are trimmed by the spreadsheet layer; the
	// reader must pad them back so every row spans the header.
	writeSheet(t, path, "Sheet1", [][]any{
		{"A", "B", "C"},
		{1},
	})

	table, err := (&XLSXReader{}).ReadTable(path, nil)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if diff := cmp.Diff([][]string{{"1", "", ""}}, table.Rows); diff != "" {
		t.Errorf("ReadTable() rows mismatch (-want +got):\n%s", diff)
	}
}

func TestXLSXReaderSheetOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.xlsx")
	writeSheet(t, path, "labels", [][]any{
		{"A"},
		{1},
	})

	table, err := (&XLSXReader{}).ReadTable(path, map[string]any{"sheet": "labels"})
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if diff := cmp.Diff([]string{"A"}, table.Header); diff != "" {
		t.Errorf("ReadTable() header mismatch (-want +got):\n%s", diff)
	}

	if _, err := (&XLSXReader{}).ReadTable(path, map[string]any{"sheet": "missing"}); err == nil {
		t.Error("ReadTable() with unknown sheet succeeded, want error")
	}
}

func TestCSVReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.csv")
	data := "id,A,B,C\ns1,1,0,1\ns2,0,1,0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	table, err := (&CSVReader{}).ReadTable(path, nil)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}

	if diff := cmp.Diff([]string{"id", "A", "B", "C"}, table.Header); diff != "" {
		t.Errorf("ReadTable() header mismatch (-want +got):\n%s", diff)
	}
	if table.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", table.NumRows())
	}
	col := table.Column("A")
	for i, cell := range map[int]string{0: "1", 1: "0"} {
		if got := table.Rows[i][col]; got != cell {
			t.Errorf("column A row %d = %q, want %q", i, got, cell)
		}
	}
}

func TestCSVReaderRejectsOptions(t *testing.T) {
	if _, err := (&CSVReader{}).ReadTable("truth.csv", map[string]any{"sheet": "x"}); err == nil {
		t.Error("ReadTable() with options succeeded, want error")
	}
}
