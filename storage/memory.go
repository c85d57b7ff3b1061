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
	"slices"
	"sync"

	"rsc.io/omap"
	"rsc.io/ordered"

	"github.com/shrlab/labeleval"
)

// MemoryStore keeps run history in memory, for tests and development.
// Records are keyed by (creation time, run ID) so listing is ordered
// without a sort on every call. Stored and returned records are deep
// copies: callers can never mutate the store's state through a pointer
// they handed in or got back.
type MemoryStore struct {
	mu   sync.RWMutex
	runs omap.Map[string, *labeleval.RunRecord]
	keys map[string]string // run ID -> composite key
}

// NewMemoryStore creates an empty in-memory run store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keys: make(map[string]string),
	}
}

func runKey(record *labeleval.RunRecord) string {
	return string(ordered.Encode(record.CreatedAt.UnixNano(), record.RunID))
}

func copyRecord(record *labeleval.RunRecord) *labeleval.RunRecord {
	copied := *record
	copied.UnknownTokens = slices.Clone(record.UnknownTokens)
	return &copied
}

// Save implements labeleval.RunStore. A record with an already stored ID
// replaces the stored record.
func (s *MemoryStore) Save(ctx context.Context, record *labeleval.RunRecord) error {
	if record == nil || record.RunID == "" {
		return labeleval.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.keys[record.RunID]; ok {
		s.runs.Delete(old)
	}
	key := runKey(record)
	s.keys[record.RunID] = key
	s.runs.Set(key, copyRecord(record))
	return nil
}

// Get implements labeleval.RunStore.
func (s *MemoryStore) Get(ctx context.Context, runID string) (*labeleval.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[runID]
	if !ok {
		return nil, labeleval.ErrNotFound
	}
	record, ok := s.runs.Get(key)
	if !ok {
		return nil, labeleval.ErrNotFound
	}
	return copyRecord(record), nil
}

// List implements labeleval.RunStore, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]*labeleval.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*labeleval.RunRecord, 0, len(s.keys))
	for _, record := range s.runs.All() {
		records = append(records, copyRecord(record))
	}
	slices.Reverse(records)
	return records, nil
}

// Close implements labeleval.RunStore. It is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
