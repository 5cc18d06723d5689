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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/caralegal/cara/ai"
	"github.com/caralegal/cara/ai/openai"
	"github.com/caralegal/cara/analysis"
	"github.com/caralegal/cara/core"
	"github.com/caralegal/cara/document"
	"github.com/caralegal/cara/lawdata"
	"github.com/caralegal/cara/storage"
	"github.com/caralegal/cara/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	aiFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible completion service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:     "model",
			Usage:    "Completion model name",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API key for the completion service",
			EnvVars: []string{"CARA_API_KEY"},
		},
		&cli.StringFlag{
			Name:  "lang",
			Usage: "Output language (en, hi)",
			Value: "en",
		},
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "Path to the contract document (.txt)",
			Required: true,
		},
	}

	dbFlag := &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to BadgerDB database directory with the acts dataset",
	}

	app := &cli.App{
		Name:  "cara",
		Usage: "Contract analysis and risk assessment for Indian legal documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Extract parties, dates, amounts, and clauses from a contract",
				Action: analyzeCommand,
				Flags:  aiFlags,
			},
			{
				Name:   "risk",
				Usage:  "Score contract risk",
				Action: riskCommand,
				Flags:  aiFlags,
			},
			{
				Name:   "compliance",
				Usage:  "Check contract compliance with Indian law",
				Action: complianceCommand,
				Flags:  append([]cli.Flag{dbFlag}, aiFlags...),
			},
			{
				Name:   "full",
				Usage:  "Run analysis, risk scoring, and compliance checking together",
				Action: fullCommand,
				Flags:  append([]cli.Flag{dbFlag}, aiFlags...),
			},
			{
				Name:   "load-acts",
				Usage:  "Import the annotated acts dataset into the database",
				Action: loadActsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "Directory of act JSON files",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyzeCommand(c *cli.Context) error {
	completer, err := newCompleter(c)
	if err != nil {
		return err
	}

	analyzer, err := analysis.NewAnalyzer(completer)
	if err != nil {
		return err
	}

	text, lang, err := readDocument(c)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(context.Background(), text, lang)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return printJSON(result)
}

func riskCommand(c *cli.Context) error {
	completer, err := newCompleter(c)
	if err != nil {
		return err
	}

	scorer, err := analysis.NewRiskScorer(completer)
	if err != nil {
		return err
	}

	text, lang, err := readDocument(c)
	if err != nil {
		return err
	}

	result, err := scorer.Assess(context.Background(), text, lang)
	if err != nil {
		return fmt.Errorf("risk assessment failed: %w", err)
	}

	return printJSON(result)
}

func complianceCommand(c *cli.Context) error {
	completer, err := newCompleter(c)
	if err != nil {
		return err
	}

	acts, cleanup, err := openActs(c)
	if err != nil {
		return err
	}
	defer cleanup()

	checker, err := analysis.NewComplianceChecker(completer, acts)
	if err != nil {
		return err
	}

	text, lang, err := readDocument(c)
	if err != nil {
		return err
	}

	result, err := checker.Check(context.Background(), text, lang)
	if err != nil {
		return fmt.Errorf("compliance check failed: %w", err)
	}

	return printJSON(result)
}

func fullCommand(c *cli.Context) error {
	completer, err := newCompleter(c)
	if err != nil {
		return err
	}

	acts, cleanup, err := openActs(c)
	if err != nil {
		return err
	}
	defer cleanup()

	analyzer, err := analysis.NewAnalyzer(completer)
	if err != nil {
		return err
	}
	scorer, err := analysis.NewRiskScorer(completer)
	if err != nil {
		return err
	}
	checker, err := analysis.NewComplianceChecker(completer, acts)
	if err != nil {
		return err
	}

	runner, err := analysis.NewRunner(analyzer, scorer, checker)
	if err != nil {
		return err
	}
	defer runner.Release()

	text, lang, err := readDocument(c)
	if err != nil {
		return err
	}

	report, err := runner.FullReport(context.Background(), text, lang)
	if err != nil {
		return fmt.Errorf("full analysis failed: %w", err)
	}

	return printJSON(report)
}

func loadActsCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewActRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	count, err := lawdata.Import(context.Background(), repo, c.String("dir"))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d acts\n", count)
	return nil
}

// newCompleter builds the LLM client from CLI flags.
func newCompleter(c *cli.Context) (ai.Completer, error) {
	cfg := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithToken(c.String("token")),
	)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return openai.NewCompleter(cfg)
}

// openActs opens the optional acts dataset. Without --db, compliance
// checking relies on model knowledge alone.
func openActs(c *cli.Context) (storage.ActRepository, func(), error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, func() {}, nil
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo, err := badger.NewActRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to create repository: %w", err)
	}

	cleanup := func() {
		repo.Close()
		backend.Close()
	}
	return repo, cleanup, nil
}

// readDocument reads the contract text and output language from CLI flags.
func readDocument(c *cli.Context) (string, core.Language, error) {
	lang, err := parseLanguage(c.String("lang"))
	if err != nil {
		return "", 0, err
	}

	extractor := document.NewPlainTextExtractor()
	text, err := extractor.ExtractText(c.String("file"))
	if err != nil {
		return "", 0, err
	}

	return text, lang, nil
}

func parseLanguage(s string) (core.Language, error) {
	switch strings.ToLower(s) {
	case "en", "english":
		return core.LanguageEnglish, nil
	case "hi", "hindi":
		return core.LanguageHindi, nil
	default:
		return 0, fmt.Errorf("invalid language %q: must be en or hi", s)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
