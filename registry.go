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
	"fmt"
	"slices"
	"sync"
)

// ExtractorFactory creates an extractor from strategy-specific options.
type ExtractorFactory func(options map[string]any) (Extractor, error)

// Registry manages available extraction strategies by name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ExtractorFactory
}

// NewRegistry creates a new extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ExtractorFactory),
	}
}

// Register registers an extractor factory under a strategy name.
func (r *Registry) Register(name string, factory ExtractorFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("extractor already registered for strategy %s", name)
	}

	r.factories[name] = factory
	return nil
}

// Get retrieves the factory registered under a strategy name.
func (r *Registry) Get(name string) (ExtractorFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("no extractor registered for strategy %s", name)
	}

	return factory, nil
}

// CreateExtractor creates an extractor instance for a strategy.
func (r *Registry) CreateExtractor(name string, options map[string]any) (Extractor, error) {
	factory, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	return factory(options)
}

// ListStrategies returns all registered strategy names, sorted.
func (r *Registry) ListStrategies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// IsRegistered checks if an extractor is registered for a strategy name.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// DefaultRegistry is the global registry instance.
var DefaultRegistry = NewRegistry()

// Register registers an extractor factory in the default registry.
func Register(name string, factory ExtractorFactory) error {
	return DefaultRegistry.Register(name, factory)
}

// CreateExtractor creates an extractor using the default registry.
func CreateExtractor(name string, options map[string]any) (Extractor, error) {
	return DefaultRegistry.CreateExtractor(name, options)
}
