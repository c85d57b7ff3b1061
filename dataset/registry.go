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

// Package dataset reads ground-truth tables and prediction records from
// disk. Table formats are pluggable behind an extension-keyed reader
// registry; the prediction source is always line-delimited JSON.
package dataset

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/shrlab/labeleval"
)

// TableReader loads one tabular file into a format-agnostic Table.
// Options are reader-specific; unrecognized options are an error.
type TableReader interface {
	ReadTable(path string, options map[string]any) (*labeleval.Table, error)
}

// ReaderRegistry manages available table readers by file extension.
type ReaderRegistry struct {
	mu      sync.RWMutex
	readers map[string]TableReader
}

// NewReaderRegistry creates a new table reader registry.
func NewReaderRegistry() *ReaderRegistry {
	return &ReaderRegistry{
		readers: make(map[string]TableReader),
	}
}

// Register registers a reader under a file extension without the dot,
// for example "xlsx".
func (r *ReaderRegistry) Register(ext string, reader TableReader) error {
	ext = strings.ToLower(ext)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.readers[ext]; exists {
		return fmt.Errorf("table reader already registered for extension %s", ext)
	}

	r.readers[ext] = reader
	return nil
}

// For returns the reader for a file path, chosen by its extension.
func (r *ReaderRegistry) For(path string) (TableReader, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	r.mu.RLock()
	defer r.mu.RUnlock()

	reader, exists := r.readers[ext]
	if !exists {
		return nil, fmt.Errorf("no table reader registered for extension %q", ext)
	}

	return reader, nil
}

// ListFormats returns all registered extensions, sorted.
func (r *ReaderRegistry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.readers))
	for ext := range r.readers {
		exts = append(exts, ext)
	}
	slices.Sort(exts)

	return exts
}

// DefaultRegistry is the global reader registry instance.
var DefaultRegistry = NewReaderRegistry()

// RegisterTableReader registers a reader in the default registry.
func RegisterTableReader(ext string, reader TableReader) error {
	return DefaultRegistry.Register(ext, reader)
}

// TableReaderFor returns a reader from the default registry, chosen by
// the file's extension.
func TableReaderFor(path string) (TableReader, error) {
	return DefaultRegistry.For(path)
}

func init() {
	if err := RegisterTableReader("xlsx", &XLSXReader{}); err != nil {
		panic(err)
	}
	if err := RegisterTableReader("csv", &CSVReader{}); err != nil {
		panic(err)
	}
}
