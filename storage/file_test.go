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

package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/shrlab/labeleval"
)

func testResult(t *testing.T) *labeleval.Result {
	t.Helper()

	truth, err := labeleval.NewMatrix([]string{"A", "B", "C"}, [][]int{
		{1, 0, 1},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	pred, err := labeleval.NewMatrix([]string{"A", "B", "C"}, [][]int{
		{1, 0, 1},
		{0, 1, 0},
	})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}

	report, err := labeleval.NewEngine().Evaluate(truth, pred)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	now := time.Now().UTC()
	return &labeleval.Result{
		RunID:           "run-1",
		TruthPath:       "truth.xlsx",
		PredictionsPath: "pred.jsonl",
		Truth:           truth,
		Predictions:     pred,
		Report:          report,
		UnknownTokens:   map[string]int{"Z": 2},
		SkippedLines:    []int{4},
		CreatedAt:       now,
		CompletedAt:     now,
	}
}

func TestFileWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out") // created by the writer
	w := NewFileWriter(dir)

	result := testResult(t)
	if err := w.Write(context.Background(), result); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	for _, name := range []string{TruthFile, PredFile, ReportFile, ResultFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("artifact %s: %v", name, err)
		}
	}

	// Matrix artifacts carry the vocabulary as their header row.
	f, err := excelize.OpenFile(filepath.Join(dir, TruthFile))
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, rows[0]); diff != "" {
		t.Errorf("truth header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "0", "1"}, rows[1]); diff != "" {
		t.Errorf("truth row 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestFileWriterReportContent(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)

	if err := w.Write(context.Background(), testResult(t)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ReportFile))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	report := string(data)

	for _, want := range []string{
		"Samples: 2",
		"precision",
		"Hamming loss:      0.1667",
		"Subset accuracy:   0.5000",
		"Per-class accuracy:",
		"Z: 2",
		"Skipped prediction lines: [4]",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q:\n%s", want, report)
		}
	}
}

func TestFileWriterResultJSON(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)

	if err := w.Write(context.Background(), testResult(t)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ResultFile))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", decoded["run_id"])
	}
	if _, ok := decoded["report"]; !ok {
		t.Error("result.json is missing the report")
	}
}

func TestFileWriterRejectsIncompleteResult(t *testing.T) {
	w := NewFileWriter(t.TempDir())

	if err := w.Write(context.Background(), nil); err != labeleval.ErrInvalidInput {
		t.Errorf("Write(nil) error = %v, want ErrInvalidInput", err)
	}

	result := testResult(t)
	result.Report = nil
	if err := w.Write(context.Background(), result); err != labeleval.ErrInvalidInput {
		t.Errorf("Write() without report error = %v, want ErrInvalidInput", err)
	}
}
