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


package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caralegal/cara/core"
)

// ErrUnsupportedFormat indicates a document format with no registered
// extractor, such as PDF or DOCX.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// TextExtractor pulls raw text out of a document file.
type TextExtractor interface {
	// ExtractText reads the file at path and returns its text content.
	// Returns ErrUnsupportedFormat for file types the extractor does not
	// handle, and core.ErrEmptyText when the file holds no usable text.
	ExtractText(path string) (string, error)
}

// PlainTextExtractor implements TextExtractor for plain text files.
type PlainTextExtractor struct{}

var _ TextExtractor = (*PlainTextExtractor)(nil)

// NewPlainTextExtractor creates an extractor for .txt documents.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// ExtractText reads a .txt file. Other extensions, including .pdf and
// .docx, yield ErrUnsupportedFormat.
func (e *PlainTextExtractor) ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", core.ErrEmptyText
	}
	return text, nil
}
