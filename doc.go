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

// Package labeleval evaluates multi-label classifiers whose predictions
// arrive as free-form generated text rather than structured labels.
//
// The package aligns model-generated text against ground-truth multi-label
// annotations and computes the standard multi-label metric suite: per-class
// accuracy, Hamming loss, samples-averaged Jaccard similarity, subset
// accuracy, and a full classification report with per-class
// precision/recall/F1 and macro/micro/weighted/samples aggregates.
//
// # Core Concepts
//
// Vocabulary: the fixed, ordered set of valid category names, plus one
// reserved sentinel category meaning "no finding" that is never scored as
// a positive class.
//
// Extractor: parses one free-text prediction into a LabelSet of recognized
// categories, diverting unrecognized tokens into a separate unknown set.
//
// Matrix: an immutable N x K multi-hot label matrix with columns in
// vocabulary order, built from label sets or from a tabular ground-truth
// source.
//
// Engine: computes the metric suite over two aligned matrices.
//
// Result: bundles one run's matrices, report, and diagnostics for sinks.
//
// # Pipeline Shape
//
// Ground truth rows are loaded and encoded, prediction text records are
// loaded, extracted, and encoded, row counts are validated for alignment,
// and only then does the engine score the pair:
//
//	vocab, err := labeleval.NewVocabulary([]string{"A", "B", "C"}, "None")
//	truth, err := labeleval.EncodeTable(table, vocab)
//	pred := labeleval.EncodeSets(sets, vocab)
//	if err := labeleval.Align(truth, pred); err != nil {
//	    // row counts or columns disagree; scoring would be meaningless
//	}
//	report, err := labeleval.NewEngine().Evaluate(truth, pred)
//
// # Extraction Strategies
//
// The free-text parsing convention is a fragile syntactic contract
// inherited from the upstream text generator, so extraction is a pluggable
// strategy behind the Extractor interface. Strategies are registered in a
// global registry and created by name:
//
//	labeleval.Register("emphasis", factory)
//	ex, err := labeleval.CreateExtractor("emphasis", map[string]any{"marker": "**"})
//
// The built-in "emphasis" strategy recognizes lines framed by a doubled
// two-character marker, for example "**category**".
//
// # Storage Backends
//
// The ReportWriter and RunStore interfaces decouple scoring from
// persistence. The storage subpackage provides a file-based report writer
// (spreadsheet matrices plus a text report), a SQLite-backed run-history
// store, and an in-memory store for tests and development.
package labeleval
