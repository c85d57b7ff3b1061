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

// Package pipeline orchestrates one evaluation run: load ground truth,
// load and parse predictions, extract labels, encode, align, score, and
// persist. The pipeline is single-threaded and batch-oriented; the full
// prediction file is read before any metric is computed, because
// sample-count alignment must be verified before scoring. The unit of
// failure is the whole run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/shrlab/labeleval"
	"github.com/shrlab/labeleval/config"
	"github.com/shrlab/labeleval/dataset"
	"github.com/shrlab/labeleval/internal/trace"
	"github.com/shrlab/labeleval/storage"
)

// Pipeline runs one evaluation from configuration to written artifacts.
type Pipeline struct {
	cfg       *config.Config
	vocab     *labeleval.Vocabulary
	extractor labeleval.Extractor
	engine    *labeleval.Engine
	writer    labeleval.ReportWriter
	store     labeleval.RunStore
	ownsStore bool
	log       *logrus.Logger
}

// New builds a pipeline from a validated configuration. Unless options
// say otherwise, the extractor comes from the strategy registry, output
// goes to a file writer rooted at the config's output directory, and a
// non-empty history path opens a SQLite run store.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vocab, err := labeleval.NewVocabulary(cfg.Vocabulary.Categories, cfg.Vocabulary.Sentinel)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:    cfg,
		vocab:  vocab,
		engine: labeleval.NewEngine(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.extractor == nil {
		extractor, err := labeleval.CreateExtractor(cfg.Extractor.Name, cfg.Extractor.Options)
		if err != nil {
			return nil, fmt.Errorf("failed to create extractor: %w", err)
		}
		p.extractor = extractor
	}
	if p.log == nil {
		p.log = logrus.StandardLogger()
	}
	if p.writer == nil {
		p.writer = storage.NewFileWriter(cfg.Output.Dir)
	}
	if p.store == nil && cfg.Output.History != "" {
		store, err := storage.NewSQLiteStore(cfg.Output.History)
		if err != nil {
			return nil, err
		}
		p.store = store
		p.ownsStore = true
	}

	return p, nil
}

// Close releases resources the pipeline opened itself. Stores injected
// with WithStore stay open; their owner closes them.
func (p *Pipeline) Close() error {
	if p.ownsStore && p.store != nil {
		return p.store.Close()
	}
	return nil
}

// Run executes the batch. Fatal failures (missing columns, misaligned
// row counts, unwritable output) abort with an error; per-line parse
// failures and unknown label tokens are diagnostics carried in the
// returned result.
func (p *Pipeline) Run(ctx context.Context) (*labeleval.Result, error) {
	started := time.Now().UTC()

	truth, err := p.loadTruth(ctx)
	if err != nil {
		return nil, err
	}

	preds, err := p.loadPredictions(ctx)
	if err != nil {
		return nil, err
	}

	sets, unknown := p.extract(ctx, preds.Records)

	truth, pred, err := p.align(ctx, truth, preds, sets)
	if err != nil {
		return nil, err
	}

	_, span := trace.Start(ctx, "score",
		attribute.Int("samples", truth.NumRows()),
		attribute.Int("classes", truth.NumCols()))
	report, err := p.engine.Evaluate(truth, pred)
	span.End()
	if err != nil {
		return nil, err
	}

	result := &labeleval.Result{
		RunID:           uuid.NewString(),
		TruthPath:       p.cfg.Inputs.Truth,
		PredictionsPath: p.cfg.Inputs.Predictions,
		OutputDir:       p.cfg.Output.Dir,
		Truth:           truth,
		Predictions:     pred,
		Report:          report,
		CreatedAt:       started,
		CompletedAt:     time.Now().UTC(),
	}
	if unknown.Len() > 0 {
		result.UnknownTokens = unknown.Counts()
	}
	for _, pe := range preds.Skipped {
		result.SkippedLines = append(result.SkippedLines, pe.Line)
	}

	if err := p.write(ctx, result); err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"run_id":          result.RunID,
		"samples":         report.Samples,
		"hamming_loss":    report.HammingLoss,
		"jaccard_samples": report.JaccardSamples,
		"subset_accuracy": report.SubsetAccuracy,
	}).Info("evaluation complete")

	return result, nil
}

func (p *Pipeline) loadTruth(ctx context.Context) (*labeleval.Matrix, error) {
	_, span := trace.Start(ctx, "load_truth", attribute.String("path", p.cfg.Inputs.Truth))
	defer span.End()

	reader, err := dataset.TableReaderFor(p.cfg.Inputs.Truth)
	if err != nil {
		return nil, err
	}
	table, err := reader.ReadTable(p.cfg.Inputs.Truth, p.cfg.Reader.Options)
	if err != nil {
		return nil, err
	}
	truth, err := labeleval.EncodeTable(table, p.vocab)
	if err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"path":    p.cfg.Inputs.Truth,
		"samples": truth.NumRows(),
		"classes": truth.NumCols(),
	}).Info("loaded ground truth")
	return truth, nil
}

func (p *Pipeline) loadPredictions(ctx context.Context) (*dataset.Predictions, error) {
	_, span := trace.Start(ctx, "load_predictions", attribute.String("path", p.cfg.Inputs.Predictions))
	defer span.End()

	preds, err := dataset.ReadPredictions(p.cfg.Inputs.Predictions, p.cfg.Inputs.TextField)
	if err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"path":    p.cfg.Inputs.Predictions,
		"lines":   preds.Lines,
		"records": len(preds.Records),
	}).Info("loaded predictions")

	if len(preds.Skipped) > 0 {
		lines := make([]int, len(preds.Skipped))
		for i, pe := range preds.Skipped {
			lines[i] = pe.Line
		}
		p.log.WithField("lines", lines).Warn("skipped malformed prediction records")
	}
	return preds, nil
}

// extract parses every prediction record. Unknown tokens accumulate
// across the pass and are logged once at its end, never per record.
func (p *Pipeline) extract(ctx context.Context, records []labeleval.Record) ([]labeleval.LabelSet, *labeleval.UnknownSet) {
	_, span := trace.Start(ctx, "extract", attribute.Int("records", len(records)))
	defer span.End()

	unknown := labeleval.NewUnknownSet()
	sets := make([]labeleval.LabelSet, len(records))
	for i, record := range records {
		labels, foreign := p.extractor.Extract(record.Text, p.vocab)
		sets[i] = labels
		unknown.AddAll(foreign)
	}

	if unknown.Len() > 0 {
		p.log.WithFields(logrus.Fields{
			"tokens": unknown.Tokens(),
			"counts": unknown.Counts(),
		}).Warn("unknown labels encountered")
	}
	return sets, unknown
}

// align enforces the row-correspondence invariant. The truth row count
// is compared against the prediction file's total line count, so a
// malformed line that was skipped can never silently shift rows: its
// truth row is dropped by line index instead, and only a genuine length
// disagreement is fatal.
func (p *Pipeline) align(ctx context.Context, truth *labeleval.Matrix, preds *dataset.Predictions, sets []labeleval.LabelSet) (*labeleval.Matrix, *labeleval.Matrix, error) {
	_, span := trace.Start(ctx, "align",
		attribute.Int("truth_rows", truth.NumRows()),
		attribute.Int("pred_lines", preds.Lines))
	defer span.End()

	if truth.NumRows() != preds.Lines {
		return nil, nil, &labeleval.AlignmentError{TruthRows: truth.NumRows(), PredRows: preds.Lines}
	}

	if len(preds.Skipped) > 0 {
		drop := mapset.NewSet[int]()
		lines := make([]int, len(preds.Skipped))
		for i, pe := range preds.Skipped {
			drop.Add(pe.Line - 1)
			lines[i] = pe.Line
		}
		truth = truth.WithoutRows(drop)
		p.log.WithField("lines", lines).Warn("dropped truth rows for skipped prediction records")
	}

	pred := labeleval.EncodeSets(sets, p.vocab)
	if err := labeleval.Align(truth, pred); err != nil {
		return nil, nil, err
	}
	return truth, pred, nil
}

func (p *Pipeline) write(ctx context.Context, result *labeleval.Result) error {
	_, span := trace.Start(ctx, "write", attribute.String("dir", p.cfg.Output.Dir))
	defer span.End()

	if err := p.writer.Write(ctx, result); err != nil {
		return err
	}
	p.log.WithField("dir", p.cfg.Output.Dir).Info("wrote artifacts")

	if p.store != nil {
		if err := p.store.Save(ctx, result.Record()); err != nil {
			return err
		}
	}
	return nil
}
