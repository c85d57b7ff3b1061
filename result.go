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
	"slices"
	"time"
)

// Result bundles everything one evaluation run produced: the aligned
// matrices, the metric suite, and the diagnostics accumulated along the
// way. Sinks consume it read-only.
type Result struct {
	// Identification
	RunID string `json:"run_id"`

	// Input provenance
	TruthPath       string `json:"truth_path,omitempty"`
	PredictionsPath string `json:"predictions_path,omitempty"`
	OutputDir       string `json:"output_dir,omitempty"`

	// Aligned matrices, column order = vocabulary order. Excluded from
	// JSON: sinks persist them in tabular form instead.
	Truth       *Matrix `json:"-"`
	Predictions *Matrix `json:"-"`

	// Metric suite
	Report *Report `json:"report"`

	// Diagnostics
	UnknownTokens map[string]int `json:"unknown_tokens,omitempty"`
	SkippedLines  []int          `json:"skipped_lines,omitempty"`

	// Timestamps
	CreatedAt   time.Time `json:"creation_timestamp"`
	CompletedAt time.Time `json:"completed_timestamp"`
}

// Record reduces the result to its run-history view: provenance and
// scalar metrics only, suitable for tabular storage.
func (r *Result) Record() *RunRecord {
	record := &RunRecord{
		RunID:           r.RunID,
		CreatedAt:       r.CreatedAt,
		TruthPath:       r.TruthPath,
		PredictionsPath: r.PredictionsPath,
		OutputDir:       r.OutputDir,
		SkippedLines:    len(r.SkippedLines),
	}
	for token := range r.UnknownTokens {
		record.UnknownTokens = append(record.UnknownTokens, token)
	}
	slices.Sort(record.UnknownTokens)
	if r.Report != nil {
		record.Samples = r.Report.Samples
		record.Classes = len(r.Report.Classes)
		record.HammingLoss = r.Report.HammingLoss
		record.JaccardSamples = r.Report.JaccardSamples
		record.SubsetAccuracy = r.Report.SubsetAccuracy
		record.MicroF1 = r.Report.MicroAvg.F1
		record.MacroF1 = r.Report.MacroAvg.F1
	}
	return record
}
