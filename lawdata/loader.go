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


package lawdata

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caralegal/cara/core"
	"github.com/caralegal/cara/storage"
)

// actFile is the on-disk shape of one annotated act.
type actFile struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	Text  string `json:"text"`
}

// LoadDir reads every *.json file in dir into Act records. Files that fail
// to decode are skipped with a warning; a missing directory is an error.
// Acts with no title fall back to the file name, so every loaded act is
// valid for storage.
func LoadDir(dir string) ([]*core.Act, error) {
	logger := slog.Default().With("component", "lawdata")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var acts []*core.Act
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable act file", "file", entry.Name(), "err", err)
			continue
		}

		var af actFile
		if err := json.Unmarshal(data, &af); err != nil {
			logger.Warn("skipping malformed act file", "file", entry.Name(), "err", err)
			continue
		}

		title := strings.TrimSpace(af.Title)
		if title == "" {
			title = strings.TrimSuffix(entry.Name(), ".json")
		}

		acts = append(acts, &core.Act{
			Title:      title,
			Year:       af.Year,
			Text:       af.Text,
			SourceFile: entry.Name(),
		})
	}

	logger.Info("loaded acts dataset", "dir", dir, "count", len(acts))
	return acts, nil
}

// Import loads every act from dir and stores it in the repository.
// Returns the number of acts imported.
func Import(ctx context.Context, repo storage.ActRepository, dir string) (int, error) {
	acts, err := LoadDir(dir)
	if err != nil {
		return 0, err
	}
	if len(acts) == 0 {
		return 0, nil
	}

	added, err := repo.AddActs(ctx, acts...)
	if err != nil {
		return 0, err
	}
	return len(added), nil
}
