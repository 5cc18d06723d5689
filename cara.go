// Copyright 2025 Caralegal Systems
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


package cara

import (
	"context"
	"log/slog"

	"github.com/caralegal/cara/ai"
	"github.com/caralegal/cara/ai/openai"
	"github.com/caralegal/cara/analysis"
	"github.com/caralegal/cara/lawdata"
	"github.com/caralegal/cara/storage"
	"github.com/caralegal/cara/storage/badger"
)

// System bundles the acts database and the completion client behind a
// single handle. Library consumers open one System and build analyzers
// from it instead of wiring storage and AI configuration by hand.
type System struct {
	backend   *badger.Backend
	acts      storage.ActRepository
	completer ai.Completer
	logger    *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig overrides the default completion service configuration.
func WithAIConfig(cfg *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = cfg
	}
}

func NewSystem(filePath string, opts ...SystemOption) (*System, error) {
	// Apply options
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create acts repository
	acts, err := badger.NewActRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create completion client with configured settings
	completer, err := openai.NewCompleter(options.aiConfig)
	if err != nil {
		acts.Close()
		backend.Close()
		return nil, err
	}

	return &System{
		backend:   backend,
		acts:      acts,
		completer: completer,
		logger:    slog.Default(),
	}, nil
}

func (s *System) Close() error {
	// Close repository before backend
	if err := s.acts.Close(); err != nil {
		s.logger.Error("error closing act repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *System) ActRepository() storage.ActRepository {
	return s.acts
}

func (s *System) Completer() ai.Completer {
	return s.completer
}

// ImportActs loads a directory of act JSON files into the database.
func (s *System) ImportActs(ctx context.Context, dir string) (int, error) {
	return lawdata.Import(ctx, s.acts, dir)
}

func (s *System) NewAnalyzer() (*analysis.Analyzer, error) {
	return analysis.NewAnalyzer(s.completer)
}

func (s *System) NewRiskScorer() (*analysis.RiskScorer, error) {
	return analysis.NewRiskScorer(s.completer)
}

func (s *System) NewComplianceChecker() (*analysis.ComplianceChecker, error) {
	return analysis.NewComplianceChecker(s.completer, s.acts)
}

// NewRunner builds a Runner wired to all three analysis variants.
// The caller owns the returned Runner and must Release it.
func (s *System) NewRunner() (*analysis.Runner, error) {
	analyzer, err := s.NewAnalyzer()
	if err != nil {
		return nil, err
	}
	scorer, err := s.NewRiskScorer()
	if err != nil {
		return nil, err
	}
	checker, err := s.NewComplianceChecker()
	if err != nil {
		return nil, err
	}
	return analysis.NewRunner(analyzer, scorer, checker)
}
