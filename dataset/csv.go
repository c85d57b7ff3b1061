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

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow/csv"

	"github.com/shrlab/labeleval"
)

// CSVReader reads a comma-separated file into a Table. The first row is
// the header; column types are inferred and cell values are rendered
// back to strings, so a binary column arrives as "0"/"1" regardless of
// whether it was inferred as integer, float, or string.
type CSVReader struct{}

// ReadTable implements TableReader. CSVReader takes no options.
func (*CSVReader) ReadTable(path string, options map[string]any) (*labeleval.Table, error) {
	if len(options) > 0 {
		return nil, fmt.Errorf("csv reader takes no options, got %d", len(options))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", path, err)
	}
	defer f.Close()

	rdr := csv.NewInferringReader(f,
		csv.WithHeader(true),
		csv.WithChunk(-1),
		csv.WithNullReader(true, ""),
	)
	defer rdr.Release()

	table := &labeleval.Table{}
	for rdr.Next() {
		rec := rdr.Record()
		if table.Header == nil {
			for _, field := range rec.Schema().Fields() {
				table.Header = append(table.Header, field.Name)
			}
		}
		for i := 0; i < int(rec.NumRows()); i++ {
			row := make([]string, rec.NumCols())
			for j := 0; j < int(rec.NumCols()); j++ {
				if col := rec.Column(j); col.IsValid(i) {
					row[j] = col.ValueStr(i)
				}
			}
			table.Rows = append(table.Rows, row)
		}
	}
	if err := rdr.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read csv %s: %w", path, err)
	}
	if table.Header == nil {
		return nil, fmt.Errorf("csv %s has no header row", path)
	}
	return table, nil
}
