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
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/shrlab/labeleval"
)

// runModel is the database row for one completed run.
type runModel struct {
	RunID     string    `gorm:"column:run_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;index"`

	TruthPath       string `gorm:"column:truth_path"`
	PredictionsPath string `gorm:"column:predictions_path"`
	OutputDir       string `gorm:"column:output_dir"`

	Samples int `gorm:"column:samples"`
	Classes int `gorm:"column:classes"`

	HammingLoss    float64 `gorm:"column:hamming_loss"`
	JaccardSamples float64 `gorm:"column:jaccard_samples"`
	SubsetAccuracy float64 `gorm:"column:subset_accuracy"`
	MicroF1        float64 `gorm:"column:micro_f1"`
	MacroF1        float64 `gorm:"column:macro_f1"`

	UnknownTokens StringSlice `gorm:"column:unknown_tokens;type:text"`
	SkippedLines  int         `gorm:"column:skipped_lines"`
}

func (runModel) TableName() string {
	return "runs"
}

func toModel(record *labeleval.RunRecord) *runModel {
	return &runModel{
		RunID:           record.RunID,
		CreatedAt:       record.CreatedAt,
		TruthPath:       record.TruthPath,
		PredictionsPath: record.PredictionsPath,
		OutputDir:       record.OutputDir,
		Samples:         record.Samples,
		Classes:         record.Classes,
		HammingLoss:     record.HammingLoss,
		JaccardSamples:  record.JaccardSamples,
		SubsetAccuracy:  record.SubsetAccuracy,
		MicroF1:         record.MicroF1,
		MacroF1:         record.MacroF1,
		UnknownTokens:   StringSlice(record.UnknownTokens),
		SkippedLines:    record.SkippedLines,
	}
}

func (m *runModel) toRecord() *labeleval.RunRecord {
	return &labeleval.RunRecord{
		RunID:           m.RunID,
		CreatedAt:       m.CreatedAt,
		TruthPath:       m.TruthPath,
		PredictionsPath: m.PredictionsPath,
		OutputDir:       m.OutputDir,
		Samples:         m.Samples,
		Classes:         m.Classes,
		HammingLoss:     m.HammingLoss,
		JaccardSamples:  m.JaccardSamples,
		SubsetAccuracy:  m.SubsetAccuracy,
		MicroF1:         m.MicroF1,
		MacroF1:         m.MacroF1,
		UnknownTokens:   []string(m.UnknownTokens),
		SkippedLines:    m.SkippedLines,
	}
}

// SQLiteStore keeps run history in a SQLite database file.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens or creates the run database at path and migrates
// its schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open run database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&runModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate run database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements labeleval.RunStore. A record with an already stored ID
// replaces the stored row.
func (s *SQLiteStore) Save(ctx context.Context, record *labeleval.RunRecord) error {
	if record == nil || record.RunID == "" {
		return labeleval.ErrInvalidInput
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(toModel(record)).Error
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", record.RunID, err)
	}
	return nil
}

// Get implements labeleval.RunStore.
func (s *SQLiteStore) Get(ctx context.Context, runID string) (*labeleval.RunRecord, error) {
	var m runModel
	err := s.db.WithContext(ctx).First(&m, "run_id = ?", runID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, labeleval.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	return m.toRecord(), nil
}

// List implements labeleval.RunStore, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]*labeleval.RunRecord, error) {
	var models []runModel
	err := s.db.WithContext(ctx).
		Order("created_at DESC, run_id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	records := make([]*labeleval.RunRecord, len(models))
	for i := range models {
		records[i] = models[i].toRecord()
	}
	return records, nil
}

// Close implements labeleval.RunStore.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
