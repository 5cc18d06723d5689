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


// Package extract provides deterministic, rule-based extraction of
// structured information from raw contract text.
//
// It is the fallback path of the analysis pipeline: when the LLM
// collaborator fails or returns nothing usable, Basic reconstructs a
// minimal ContractAnalysis from regex pattern matching, and Clauses
// classifies known clause types from a fixed trigger-phrase catalog.
//
// All exported functions are pure and safe for concurrent use. User-facing
// strings are looked up from a per-language table keyed by core.Language.
package extract
