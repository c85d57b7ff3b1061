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
	"bufio"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/shrlab/labeleval"
)

// DefaultTextField is the prediction-text field read from each record
// when the caller names none.
const DefaultTextField = "predict"

// maxLineBytes bounds one prediction record; generated text can carry
// long rationales before the label lines.
const maxLineBytes = 16 * 1024 * 1024

// Predictions is the result of one pass over a line-delimited JSON
// prediction file. Lines is the total number of lines seen, including
// skipped ones, so callers can validate sample-count alignment against
// the ground truth before scoring. Every surviving record carries its
// 1-based line number.
type Predictions struct {
	Records []labeleval.Record
	Lines   int
	Skipped []*labeleval.ParseError
}

// ReadPredictions reads a line-delimited JSON prediction file. Each line
// must be one JSON object; the prediction text is taken from textField
// (gjson path syntax, DefaultTextField when empty), with a missing field
// yielding empty text — the defined behavior for a missing prediction.
//
// A line that is not a JSON object is skipped and recorded in Skipped
// with its line number; the pass continues. Skips are returned, not
// logged: diagnostic reporting is the caller's job, once per file.
func ReadPredictions(path, textField string) (*Predictions, error) {
	if textField == "" {
		textField = DefaultTextField
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open predictions %s: %w", path, err)
	}
	defer f.Close()

	preds := &Predictions{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		preds.Lines++
		line := scanner.Text()
		if !gjson.Valid(line) || !gjson.Parse(line).IsObject() {
			preds.Skipped = append(preds.Skipped, &labeleval.ParseError{Line: preds.Lines})
			continue
		}
		preds.Records = append(preds.Records, labeleval.Record{
			Index: preds.Lines,
			Text:  gjson.Get(line, textField).String(),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read predictions %s: %w", path, err)
	}
	return preds, nil
}
