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


package jsonrepair

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Parse robustly parses JSON from an LLM response, handling common issues:
//   - Markdown code fences (```json ... ```)
//   - Keys missing their opening quote
//   - Truncated JSON (closing brackets/braces missing)
//   - Trailing commas
//   - Unterminated strings
//
// It never panics and never returns an error: if every repair stage fails,
// the caller-supplied fallback is returned. A nil fallback is normalized to
// an empty map. Already-valid JSON is returned unaltered.
func Parse(content string, fallback map[string]any) map[string]any {
	if fallback == nil {
		fallback = map[string]any{}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return fallback
	}

	content = stripFences(content)

	// Direct parse first.
	if m, ok := tryParse(content); ok {
		return m
	}

	// Keys that lost their opening quote are a cheap fix worth trying
	// before the heavier structural repairs.
	if m, ok := tryParse(quoteKeys(content)); ok {
		return m
	}

	if repaired, ok := repairTruncated(content); ok {
		if m, ok := tryParse(repaired); ok {
			return m
		}
	}

	if closed, ok := forceClose(content); ok {
		if m, ok := tryParse(closed); ok {
			return m
		}
	}

	preview := content
	if len(preview) > 200 {
		preview = preview[:200]
	}
	slog.Warn("JSON repair failed, using fallback", "component", "jsonrepair", "preview", preview)
	return fallback
}

// tryParse attempts a strict parse into an object.
func tryParse(s string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, false
	}
	if m == nil {
		// "null" parses without error but carries nothing usable.
		return nil, false
	}
	return m, true
}

// stripFences removes a markdown code fence wrapper, keeping the interior.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// repairTruncated attempts to repair truncated JSON by removing the last
// incomplete value and closing all open brackets and braces.
// Returns false if no line of the content plausibly ends a complete value.
func repairTruncated(content string) (string, bool) {
	// Drop lines from the end until the last retained line looks complete.
	lines := strings.Split(content, "\n")
	for len(lines) > 0 {
		if lineComplete(strings.TrimSpace(lines[len(lines)-1])) {
			break
		}
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return "", false
	}

	content = strings.Join(lines, "\n")
	content = trimTrailingComma(content)

	openBraces := strings.Count(content, "{") - strings.Count(content, "}")
	openBrackets := strings.Count(content, "[") - strings.Count(content, "]")

	if insideString(content) {
		content += `"`
	}

	// Closing the string may have exposed a trailing comma.
	content = trimTrailingComma(strings.TrimRight(content, " \t\r\n"))

	if openBrackets > 0 {
		content += strings.Repeat("]", openBrackets)
	}
	if openBraces > 0 {
		content += strings.Repeat("}", openBraces)
	}

	return content, true
}

// lineComplete reports whether a trimmed line plausibly ends a complete
// JSON value: a comma, closer, quote, digit, or bare literal.
func lineComplete(line string) bool {
	if line == "" {
		return false
	}
	for _, suffix := range []string{",", "}", "]", `"`, "true", "false", "null"} {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	last := line[len(line)-1]
	return last >= '0' && last <= '9'
}

// insideString reports whether the cursor ends up inside a quoted string
// after scanning the whole content, respecting escape characters.
func insideString(s string) bool {
	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if r == '"' {
			inString = !inString
		}
	}
	return inString
}

// trimTrailingComma removes a trailing comma and any whitespace after it.
// Content without a trailing comma is returned unchanged.
func trimTrailingComma(s string) string {
	t := strings.TrimRight(s, " \t\r\n")
	if strings.HasSuffix(t, ",") {
		return t[:len(t)-1]
	}
	return s
}

// forceClose aggressively closes JSON by tracking bracket depth from the
// first opening brace, discarding any preamble before it. Still-open
// strings are closed and the remaining stack is appended last-opened,
// first-closed. Returns false if the content has no opening brace.
func forceClose(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return "", false
	}

	out := make([]rune, 0, len(content)-start)
	var stack []rune
	inString := false
	escaped := false

	for _, r := range content[start:] {
		if escaped {
			escaped = false
			out = append(out, r)
			continue
		}
		if r == '\\' && inString {
			escaped = true
			out = append(out, r)
			continue
		}
		if r == '"' {
			inString = !inString
			out = append(out, r)
			continue
		}
		if inString {
			out = append(out, r)
			continue
		}

		switch r {
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) > 0 && stack[len(stack)-1] == r {
				stack = stack[:len(stack)-1]
			}
		}
		out = append(out, r)
	}

	if inString {
		out = append(out, '"')
	}

	result := trimTrailingComma(strings.TrimRight(string(out), " \t\r\n"))

	var closers strings.Builder
	for i := len(stack) - 1; i >= 0; i-- {
		closers.WriteRune(stack[i])
	}
	return result + closers.String(), true
}
