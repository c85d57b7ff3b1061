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

import "github.com/mitchellh/mapstructure"

// StrategyEmphasis is the built-in marker-framed extraction strategy.
const StrategyEmphasis = "emphasis"

// emphasisOptions are the factory options for the emphasis strategy.
type emphasisOptions struct {
	Marker string `mapstructure:"marker"`
}

func init() {
	if err := Register(StrategyEmphasis, NewEmphasisFactory); err != nil {
		panic(err)
	}
}

// NewEmphasisFactory creates an Emphasis extractor from options.
// Recognized options: "marker" (string, default "**").
func NewEmphasisFactory(options map[string]any) (Extractor, error) {
	opts := emphasisOptions{Marker: DefaultMarker}
	if len(options) > 0 {
		if err := mapstructure.Decode(options, &opts); err != nil {
			return nil, err
		}
	}
	return &Emphasis{Marker: opts.Marker}, nil
}
