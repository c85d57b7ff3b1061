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
	"context"
	"time"
)

// ReportWriter persists one run's artifacts to durable storage. The
// result carries both matrices and the metric report, so writers never
// re-derive anything; exact file formats are the writer's concern.
type ReportWriter interface {
	Write(ctx context.Context, result *Result) error
}

// RunStore keeps a history of completed runs.
type RunStore interface {
	// Save stores a run record, replacing any record with the same ID.
	Save(ctx context.Context, record *RunRecord) error

	// Get retrieves a run record by ID. It returns ErrNotFound if no
	// such run was stored.
	Get(ctx context.Context, runID string) (*RunRecord, error)

	// List returns all stored runs, newest first.
	List(ctx context.Context) ([]*RunRecord, error)

	// Close releases the store's resources.
	Close() error
}

// RunRecord is the run-history view of a Result.
type RunRecord struct {
	// Identification
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`

	// Provenance
	TruthPath       string `json:"truth_path"`
	PredictionsPath string `json:"predictions_path"`
	OutputDir       string `json:"output_dir"`

	// Dimensions
	Samples int `json:"samples"`
	Classes int `json:"classes"`

	// Scalar metrics
	HammingLoss    float64 `json:"hamming_loss"`
	JaccardSamples float64 `json:"jaccard_samples"`
	SubsetAccuracy float64 `json:"subset_accuracy"`
	MicroF1        float64 `json:"micro_f1"`
	MacroF1        float64 `json:"macro_f1"`

	// Diagnostics
	UnknownTokens []string `json:"unknown_tokens,omitempty"`
	SkippedLines  int      `json:"skipped_lines,omitempty"`
}
