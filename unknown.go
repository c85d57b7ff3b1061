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

import (
	mapset "github.com/deckarep/golang-set/v2"
	"rsc.io/omap"
)

// UnknownSet accumulates the distinct unrecognized tokens encountered
// during one extraction pass, with an occurrence count per token. It is
// an explicit accumulator passed through the pass rather than hidden
// process-global state, and it never affects the binary matrices: it
// exists only for diagnostic reporting, read once when the pass ends.
//
// Tokens iterate in lexical order, so diagnostics are deterministic.
// UnknownSet is not safe for concurrent use; the pipeline is
// single-threaded by design.
type UnknownSet struct {
	tokens omap.Map[string, int]
	size   int
}

// NewUnknownSet creates an empty accumulator.
func NewUnknownSet() *UnknownSet {
	return &UnknownSet{}
}

// Add records one occurrence of an unrecognized token.
func (u *UnknownSet) Add(token string) {
	count, ok := u.tokens.Get(token)
	if !ok {
		u.size++
	}
	u.tokens.Set(token, count+1)
}

// AddAll records one occurrence of every token in the set, typically the
// unknown tokens of a single record.
func (u *UnknownSet) AddAll(tokens mapset.Set[string]) {
	if tokens == nil {
		return
	}
	for _, token := range tokens.ToSlice() {
		u.Add(token)
	}
}

// Len returns the number of distinct tokens accumulated.
func (u *UnknownSet) Len() int {
	return u.size
}

// Count returns how many records asserted the given token.
func (u *UnknownSet) Count(token string) int {
	count, _ := u.tokens.Get(token)
	return count
}

// Tokens returns the distinct tokens in lexical order.
func (u *UnknownSet) Tokens() []string {
	out := make([]string, 0, u.size)
	for token := range u.tokens.All() {
		out = append(out, token)
	}
	return out
}

// Counts returns the token occurrence counts keyed by token.
func (u *UnknownSet) Counts() map[string]int {
	out := make(map[string]int, u.size)
	for token, count := range u.tokens.All() {
		out[token] = count
	}
	return out
}
