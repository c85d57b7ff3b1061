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
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/xuri/excelize/v2"

	"github.com/shrlab/labeleval"
)

// xlsxOptions are the reader options for spreadsheet files.
type xlsxOptions struct {
	// Sheet names the worksheet to read. Empty means the first sheet.
	Sheet string `mapstructure:"sheet"`
}

// XLSXReader reads a spreadsheet worksheet into a Table. The first row
// is the header; data rows shorter than the header are padded with empty
// cells, which encode as 0.
type XLSXReader struct{}

// ReadTable implements TableReader.
// Recognized options: "sheet" (string, default first sheet).
func (*XLSXReader) ReadTable(path string, options map[string]any) (*labeleval.Table, error) {
	var opts xlsxOptions
	if len(options) > 0 {
		if err := mapstructure.Decode(options, &opts); err != nil {
			return nil, fmt.Errorf("invalid xlsx reader options: %w", err)
		}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("spreadsheet %s has no worksheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %s has no header row", sheet, path)
	}

	table := &labeleval.Table{Header: rows[0]}
	for _, row := range rows[1:] {
		// GetRows trims trailing empty cells.
		if len(row) < len(table.Header) {
			padded := make([]string, len(table.Header))
			copy(padded, row)
			row = padded
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
