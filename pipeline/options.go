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

package pipeline

import (
	"github.com/sirupsen/logrus"

	"github.com/shrlab/labeleval"
)

// Option configures a Pipeline beyond what the config file carries.
type Option func(*Pipeline)

// WithExtractor overrides the extraction strategy the config names.
func WithExtractor(extractor labeleval.Extractor) Option {
	return func(p *Pipeline) {
		p.extractor = extractor
	}
}

// WithWriter overrides the default file-based report writer.
func WithWriter(writer labeleval.ReportWriter) Option {
	return func(p *Pipeline) {
		p.writer = writer
	}
}

// WithStore sets the run-history store. It overrides the SQLite store
// the config's history path would open.
func WithStore(store labeleval.RunStore) Option {
	return func(p *Pipeline) {
		p.store = store
	}
}

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log *logrus.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}
