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


package analysis

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/caralegal/cara/core"
	"github.com/panjf2000/ants/v2"
)

// Runner executes all three analysis variants for one document
// concurrently and assembles them into a single report.
type Runner struct {
	analyzer *Analyzer
	scorer   *RiskScorer
	checker  *ComplianceChecker
	pool     *ants.Pool
	logger   *slog.Logger
}

// NewRunner creates a runner over the three orchestrators. The worker pool
// is sized for one task per analysis variant.
func NewRunner(analyzer *Analyzer, scorer *RiskScorer, checker *ComplianceChecker) (*Runner, error) {
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}
	if scorer == nil {
		return nil, ErrScorerRequired
	}
	if checker == nil {
		return nil, ErrCheckerRequired
	}

	pool, err := ants.NewPool(3)
	if err != nil {
		return nil, err
	}

	return &Runner{
		analyzer: analyzer,
		scorer:   scorer,
		checker:  checker,
		pool:     pool,
		logger:   slog.Default().With("component", "analysis-runner"),
	}, nil
}

// FullReport runs contract analysis, risk scoring, and compliance checking
// concurrently and returns the combined result. Each variant applies its
// own fallback on model failure, so a report is always complete; an error
// is returned only for invalid input.
func (r *Runner) FullReport(ctx context.Context, text string, lang core.Language) (*core.FullReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, core.ErrEmptyText
	}

	report := &core.FullReport{}
	var wg sync.WaitGroup

	run := func(task func()) {
		wg.Add(1)
		wrapped := func() {
			defer wg.Done()
			task()
		}
		if err := r.pool.Submit(wrapped); err != nil {
			// Pool exhausted or released; run on the caller's goroutine.
			r.logger.Warn("pool submit failed, running inline", "err", err)
			wrapped()
		}
	}

	run(func() {
		analysis, err := r.analyzer.Analyze(ctx, text, lang)
		if err != nil {
			r.logger.Error("contract analysis failed", "err", err)
			return
		}
		report.Analysis = analysis
	})

	run(func() {
		risk, err := r.scorer.Assess(ctx, text, lang)
		if err != nil {
			r.logger.Error("risk assessment failed", "err", err)
			return
		}
		report.Risk = risk
	})

	run(func() {
		compliance, err := r.checker.Check(ctx, text, lang)
		if err != nil {
			r.logger.Error("compliance check failed", "err", err)
			return
		}
		report.Compliance = compliance
	})

	wg.Wait()
	return report, nil
}

// Release releases the worker pool. The runner should not be used after
// calling Release.
func (r *Runner) Release() {
	r.pool.Release()
}
