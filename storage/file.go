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

// Package storage persists evaluation results: a file-based report
// writer for one run's artifacts, and SQLite-backed and in-memory
// run-history stores.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/shrlab/labeleval"
)

// Artifact file names produced by FileWriter, one set per output
// directory.
const (
	TruthFile  = "true_labels.xlsx"
	PredFile   = "pred_labels.xlsx"
	ReportFile = "evaluation_report.txt"
	ResultFile = "result.json"
)

// FileWriter writes one run's artifacts into a directory, created if
// absent: the truth and prediction matrices as spreadsheets, the
// human-readable report, and the run metadata as JSON.
type FileWriter struct {
	dir string
}

// NewFileWriter creates a writer rooted at the given output directory.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Write implements labeleval.ReportWriter.
func (w *FileWriter) Write(ctx context.Context, result *labeleval.Result) error {
	if result == nil || result.Report == nil || result.Truth == nil || result.Predictions == nil {
		return labeleval.ErrInvalidInput
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeMatrix(filepath.Join(w.dir, TruthFile), result.Truth); err != nil {
		return fmt.Errorf("failed to write truth matrix: %w", err)
	}
	if err := writeMatrix(filepath.Join(w.dir, PredFile), result.Predictions); err != nil {
		return fmt.Errorf("failed to write prediction matrix: %w", err)
	}

	report := renderReport(result)
	if err := os.WriteFile(filepath.Join(w.dir, ReportFile), []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, ResultFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}

	return nil
}

// writeMatrix writes one label matrix as a spreadsheet: a header row of
// category names, then one row of 0/1 cells per sample.
func writeMatrix(path string, m *labeleval.Matrix) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	labels := m.Labels()
	header := make([]any, len(labels))
	for j, label := range labels {
		header[j] = label
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < m.NumRows(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := m.Row(i)
		row := make([]any, len(cells))
		for j, bit := range cells {
			row[j] = bit
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// renderReport builds the text report: the classification report table,
// the scalar metrics, the per-class accuracy block, and the run's
// diagnostics.
func renderReport(result *labeleval.Result) string {
	r := result.Report

	var b strings.Builder
	b.WriteString("Multi-label evaluation report\n")
	fmt.Fprintf(&b, "Run:     %s\n", result.RunID)
	fmt.Fprintf(&b, "Samples: %d\n", r.Samples)
	fmt.Fprintf(&b, "Classes: %d\n\n", len(r.Classes))

	b.WriteString(r.Format())
	b.WriteString("\n")

	fmt.Fprintf(&b, "Hamming loss:      %.4f\n", r.HammingLoss)
	fmt.Fprintf(&b, "Jaccard (samples): %.4f\n", r.JaccardSamples)
	fmt.Fprintf(&b, "Subset accuracy:   %.4f\n\n", r.SubsetAccuracy)

	b.WriteString("Per-class accuracy:\n")
	for _, cm := range r.Classes {
		fmt.Fprintf(&b, "  %s: %.4f\n", cm.Label, cm.Accuracy)
	}

	if len(result.UnknownTokens) > 0 {
		b.WriteString("\nUnknown labels (occurrences):\n")
		tokens := make([]string, 0, len(result.UnknownTokens))
		for token := range result.UnknownTokens {
			tokens = append(tokens, token)
		}
		slices.Sort(tokens)
		for _, token := range tokens {
			fmt.Fprintf(&b, "  %s: %d\n", token, result.UnknownTokens[token])
		}
	}

	if len(result.SkippedLines) > 0 {
		fmt.Fprintf(&b, "\nSkipped prediction lines: %v\n", result.SkippedLines)
	}

	return b.String()
}
