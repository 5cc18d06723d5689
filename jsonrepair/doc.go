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


// Package jsonrepair turns unreliable LLM response text into a well-formed
// JSON object.
//
// Models routinely wrap JSON in markdown fences, drop quotes from keys,
// and get cut off mid-value when they hit a token limit. Parse applies a
// sequence of increasingly aggressive repair stages and falls back to a
// caller-supplied default when none succeed:
//
//  1. Strip markdown code fences.
//  2. Strict parse.
//  3. Re-quote bare object keys and parse again.
//  4. Truncation repair: drop trailing incomplete lines, terminate an open
//     string, balance brackets and braces.
//  5. Forced close: discard any preamble before the first brace, then close
//     every open scope by tracking bracket depth.
//
// All functions are pure and safe for concurrent use.
package jsonrepair
