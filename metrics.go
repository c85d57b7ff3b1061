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

// classCounts holds per-class confusion tallies over all samples.
type classCounts struct {
	tp, tn, fp, fn int
}

// Engine computes the multi-label metric suite over two aligned matrices.
// Inputs are treated as immutable; Evaluate performs one pass over the
// cells and produces a Report sufficient for sinks to serialize without
// re-deriving anything.
type Engine struct{}

// NewEngine creates a metrics engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate scores a prediction matrix against a truth matrix built from
// the same vocabulary. Alignment is the caller's precondition, checked
// with Align before loading-dependent work starts; Evaluate re-validates
// it and fails with *AlignmentError rather than score misaligned rows.
//
// Degenerate inputs are defined, not errors: with zero samples every
// scalar metric and per-class accuracy is 0.0, and ratios with a zero
// denominator are 0.0 with the matching marker flag set on the class row.
func (e *Engine) Evaluate(truth, pred *Matrix) (*Report, error) {
	if err := Align(truth, pred); err != nil {
		return nil, err
	}

	n := truth.NumRows()
	k := truth.NumCols()
	labels := truth.Labels()

	counts := make([]classCounts, k)
	var (
		disagree         int
		exact            int
		jaccardSum       float64
		samplesPrecision float64
		samplesRecall    float64
		samplesF1        float64
	)

	for i := 0; i < n; i++ {
		var inter, truthBits, predBits int
		rowMatch := true
		for j := 0; j < k; j++ {
			t, p := truth.At(i, j), pred.At(i, j)
			switch {
			case t == 1 && p == 1:
				counts[j].tp++
				inter++
			case t == 1 && p == 0:
				counts[j].fn++
			case t == 0 && p == 1:
				counts[j].fp++
			default:
				counts[j].tn++
			}
			if t != p {
				disagree++
				rowMatch = false
			}
			truthBits += t
			predBits += p
		}
		if rowMatch {
			exact++
		}

		// Rows where both label sets are empty count as full similarity.
		union := truthBits + predBits - inter
		if union == 0 {
			jaccardSum++
		} else {
			jaccardSum += float64(inter) / float64(union)
		}

		rowPrecision := ratio(inter, predBits)
		rowRecall := ratio(inter, truthBits)
		samplesPrecision += rowPrecision
		samplesRecall += rowRecall
		samplesF1 += harmonic(rowPrecision, rowRecall)
	}

	classes := make([]ClassMetrics, k)
	var microTP, microFP, microFN, totalSupport int
	for j, c := range counts {
		support := c.tp + c.fn
		predicted := c.tp + c.fp
		precision := ratio(c.tp, predicted)
		recall := ratio(c.tp, support)
		classes[j] = ClassMetrics{
			Label:          labels[j],
			TruePositives:  c.tp,
			TrueNegatives:  c.tn,
			FalsePositives: c.fp,
			FalseNegatives: c.fn,
			Precision:      precision,
			Recall:         recall,
			F1:             harmonic(precision, recall),
			Accuracy:       ratio(c.tp+c.tn, n),
			Support:        support,
			NoPredicted:    predicted == 0,
			NoSupport:      support == 0,
		}
		microTP += c.tp
		microFP += c.fp
		microFN += c.fn
		totalSupport += support
	}

	macro := AverageMetrics{Support: totalSupport}
	if k > 0 {
		for _, cm := range classes {
			macro.Precision += cm.Precision
			macro.Recall += cm.Recall
			macro.F1 += cm.F1
		}
		macro.Precision /= float64(k)
		macro.Recall /= float64(k)
		macro.F1 /= float64(k)
	}

	weighted := AverageMetrics{Support: totalSupport}
	if totalSupport > 0 {
		for _, cm := range classes {
			w := float64(cm.Support) / float64(totalSupport)
			weighted.Precision += w * cm.Precision
			weighted.Recall += w * cm.Recall
			weighted.F1 += w * cm.F1
		}
	}

	micro := AverageMetrics{
		Precision: ratio(microTP, microTP+microFP),
		Recall:    ratio(microTP, microTP+microFN),
		Support:   totalSupport,
	}
	micro.F1 = harmonic(micro.Precision, micro.Recall)

	samples := AverageMetrics{Support: totalSupport}
	if n > 0 {
		samples.Precision = samplesPrecision / float64(n)
		samples.Recall = samplesRecall / float64(n)
		samples.F1 = samplesF1 / float64(n)
	}

	report := &Report{
		Classes:     classes,
		MicroAvg:    micro,
		MacroAvg:    macro,
		WeightedAvg: weighted,
		SamplesAvg:  samples,
		Samples:     n,
	}
	if n > 0 && k > 0 {
		report.HammingLoss = float64(disagree) / float64(n*k)
		report.JaccardSamples = jaccardSum / float64(n)
		report.SubsetAccuracy = float64(exact) / float64(n)
	}
	return report, nil
}

// ratio divides two tallies, defining a zero denominator as 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// harmonic is the F1 combination of a precision/recall pair.
func harmonic(p, r float64) float64 {
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
