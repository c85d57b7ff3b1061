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
	"strings"
)

// ClassMetrics holds the full per-class breakdown for one category.
type ClassMetrics struct {
	Label string `json:"label"`

	// Confusion tallies, counted elementwise across all samples
	TruePositives  int `json:"true_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`

	// Derived ratios; a zero denominator yields 0 with the matching flag
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Accuracy  float64 `json:"accuracy"`
	Support   int     `json:"support"`

	// Zero-division markers
	NoPredicted bool `json:"no_predicted,omitempty"`
	NoSupport   bool `json:"no_support,omitempty"`
}

// AverageMetrics is one aggregate row of the classification report.
type AverageMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Report bundles the complete metric suite for one truth/prediction
// matrix pair: the per-class breakdown, the four aggregate rows, and the
// scalar multi-label metrics.
type Report struct {
	// Per-class breakdown in vocabulary order
	Classes []ClassMetrics `json:"classes"`

	// Aggregate rows
	MicroAvg    AverageMetrics `json:"micro_avg"`
	MacroAvg    AverageMetrics `json:"macro_avg"`
	WeightedAvg AverageMetrics `json:"weighted_avg"`
	SamplesAvg  AverageMetrics `json:"samples_avg"`

	// Scalar metrics
	HammingLoss    float64 `json:"hamming_loss"`
	JaccardSamples float64 `json:"jaccard_samples"`
	SubsetAccuracy float64 `json:"subset_accuracy"`

	// Samples is the number of scored rows.
	Samples int `json:"samples"`
}

// AccuracyByClass returns the per-class accuracy mapping, keyed by label.
func (r *Report) AccuracyByClass() map[string]float64 {
	out := make(map[string]float64, len(r.Classes))
	for _, cm := range r.Classes {
		out[cm.Label] = cm.Accuracy
	}
	return out
}

// Format renders the classification report as a fixed-width table with
// four-digit precision, one row per class followed by the micro, macro,
// weighted, and samples average rows. Rows whose precision or recall had
// a zero denominator are marked with an asterisk.
func (r *Report) Format() string {
	width := len("weighted avg")
	for _, cm := range r.Classes {
		if len(cm.Label) > width {
			width = len(cm.Label)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s  %9s  %9s  %9s  %9s\n\n", width, "", "precision", "recall", "f1-score", "support")

	flagged := false
	for _, cm := range r.Classes {
		line := fmt.Sprintf("%*s  %9.4f  %9.4f  %9.4f  %9d", width, cm.Label, cm.Precision, cm.Recall, cm.F1, cm.Support)
		if cm.NoPredicted || cm.NoSupport {
			line += " *"
			flagged = true
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	for _, avg := range []struct {
		name string
		m    AverageMetrics
	}{
		{"micro avg", r.MicroAvg},
		{"macro avg", r.MacroAvg},
		{"weighted avg", r.WeightedAvg},
		{"samples avg", r.SamplesAvg},
	} {
		fmt.Fprintf(&b, "%*s  %9.4f  %9.4f  %9.4f  %9d\n", width, avg.name, avg.m.Precision, avg.m.Recall, avg.m.F1, avg.m.Support)
	}

	if flagged {
		b.WriteString("\n* precision or recall had a zero denominator; reported as 0\n")
	}
	return b.String()
}
