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

import "errors"

// Constructor validation errors
var (
	// ErrCompleterRequired indicates a nil ai.Completer was passed to a constructor.
	ErrCompleterRequired = errors.New("analysis: completer is required")

	// ErrAnalyzerRequired indicates a nil Analyzer was passed to NewRunner.
	ErrAnalyzerRequired = errors.New("analysis: analyzer is required")

	// ErrScorerRequired indicates a nil RiskScorer was passed to NewRunner.
	ErrScorerRequired = errors.New("analysis: risk scorer is required")

	// ErrCheckerRequired indicates a nil ComplianceChecker was passed to NewRunner.
	ErrCheckerRequired = errors.New("analysis: compliance checker is required")
)
