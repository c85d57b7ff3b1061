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

// Table is an in-memory tabular data set: one header per column and one
// row of string cells per sample. Dataset readers produce it in whatever
// file format they support; EncodeTable consumes it without knowing the
// source format.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Column returns the index of the named column, or -1 if no header
// matches. Matching is exact and case-sensitive.
func (t *Table) Column(name string) int {
	for i, header := range t.Header {
		if header == name {
			return i
		}
	}
	return -1
}

// NumRows returns the number of data rows, excluding the header.
func (t *Table) NumRows() int {
	return len(t.Rows)
}
