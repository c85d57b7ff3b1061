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
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/shrlab/labeleval"
)

func testRecord(id string, created time.Time) *labeleval.RunRecord {
	return &labeleval.RunRecord{
		RunID:           id,
		CreatedAt:       created,
		TruthPath:       "truth.xlsx",
		PredictionsPath: "pred.jsonl",
		OutputDir:       "out",
		Samples:         10,
		Classes:         3,
		HammingLoss:     0.1,
		JaccardSamples:  0.8,
		SubsetAccuracy:  0.7,
		MicroF1:         0.85,
		MacroF1:         0.8,
		UnknownTokens:   []string{"Y", "Z"},
		SkippedLines:    1,
	}
}

// testStores builds each RunStore implementation fresh for one test.
func testStores(t *testing.T) map[string]labeleval.RunStore {
	t.Helper()

	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}

	return map[string]labeleval.RunStore{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}
}

func TestRunStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			record := testRecord("run-1", base)
			if err := store.Save(ctx, record); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got, err := store.Get(ctx, "run-1")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if diff := cmp.Diff(record, got); diff != "" {
				t.Errorf("Get() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunStoreNotFound(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			if _, err := store.Get(ctx, "absent"); !errors.Is(err, labeleval.ErrNotFound) {
				t.Errorf("Get() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestRunStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			for i, id := range []string{"run-1", "run-2", "run-3"} {
				record := testRecord(id, base.Add(time.Duration(i)*time.Minute))
				if err := store.Save(ctx, record); err != nil {
					t.Fatalf("Save(%s) error = %v", id, err)
				}
			}

			records, err := store.List(ctx)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}

			var ids []string
			for _, record := range records {
				ids = append(ids, record.RunID)
			}
			if diff := cmp.Diff([]string{"run-3", "run-2", "run-1"}, ids); diff != "" {
				t.Errorf("List() order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			record := testRecord("run-1", base)
			if err := store.Save(ctx, record); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			record.Samples = 99
			if err := store.Save(ctx, record); err != nil {
				t.Fatalf("Save() replacement error = %v", err)
			}

			got, err := store.Get(ctx, "run-1")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got.Samples != 99 {
				t.Errorf("Samples = %d, want 99", got.Samples)
			}

			records, err := store.List(ctx)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(records) != 1 {
				t.Errorf("List() returned %d records, want 1", len(records))
			}
		})
	}
}

func TestRunStoreRejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			if err := store.Save(ctx, nil); !errors.Is(err, labeleval.ErrInvalidInput) {
				t.Errorf("Save(nil) error = %v, want ErrInvalidInput", err)
			}
			if err := store.Save(ctx, &labeleval.RunRecord{}); !errors.Is(err, labeleval.ErrInvalidInput) {
				t.Errorf("Save() without ID error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestMemoryStoreCopiesRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	record := testRecord("run-1", time.Now())
	if err := store.Save(ctx, record); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Mutating the caller's record after saving must not leak in.
	record.UnknownTokens[0] = "mutated"

	got, err := store.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.UnknownTokens[0] != "Y" {
		t.Errorf("UnknownTokens[0] = %q, want %q", got.UnknownTokens[0], "Y")
	}
}
