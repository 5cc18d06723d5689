package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/caralegal/cara/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newAnalyzeApp() *cli.App {
	return &cli.App{
		Name: "cara",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Extract parties, dates, amounts, and clauses from a contract",
				Action: analyzeCommand,
				Flags: []cli.Flag{
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
				},
			},
		},
	}
}

func TestAnalyzeCommandFlags(t *testing.T) {
	app := newAnalyzeApp()

	t.Run("model is required", func(t *testing.T) {
		args := []string{"cara", "analyze", "--file", "/tmp/contract.txt"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("file is required", func(t *testing.T) {
		args := []string{"cara", "analyze", "--model", "test-model"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file")
	})

	t.Run("host has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var hostFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "host" {
				hostFlag = f
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})

	t.Run("model has no default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var modelFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "model" {
				modelFlag = f
				break
			}
		}
		require.NotNil(t, modelFlag)
		assert.Empty(t, modelFlag.Value)
		assert.True(t, modelFlag.Required)
	})

	t.Run("token reads CARA_API_KEY", func(t *testing.T) {
		cmd := app.Commands[0]
		var tokenFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "token" {
				tokenFlag = f
				break
			}
		}
		require.NotNil(t, tokenFlag)
		assert.Equal(t, []string{"CARA_API_KEY"}, tokenFlag.EnvVars)
	})

	t.Run("lang defaults to english", func(t *testing.T) {
		cmd := app.Commands[0]
		var langFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "lang" {
				langFlag = f
				break
			}
		}
		require.NotNil(t, langFlag)
		assert.Equal(t, "en", langFlag.Value)
	})

	t.Run("file flag has alias -f", func(t *testing.T) {
		cmd := app.Commands[0]
		var fileFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "file" {
				fileFlag = f
				break
			}
		}
		require.NotNil(t, fileFlag)
		assert.Equal(t, []string{"f"}, fileFlag.Aliases)
	})
}

func TestParseLanguage(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.Language
		wantErr  bool
	}{
		{"en", core.LanguageEnglish, false},
		{"english", core.LanguageEnglish, false},
		{"EN", core.LanguageEnglish, false},
		{"hi", core.LanguageHindi, false},
		{"hindi", core.LanguageHindi, false},
		{"Hindi", core.LanguageHindi, false},
		{"fr", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			lang, err := parseLanguage(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid language")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, lang)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: tc.input,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		testCases := []string{
			"DEBUG",
			"Info",
			"WaRn",
			"ERROR",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
		assert.Contains(t, err.Error(), "verbose")
	})

	t.Run("default log level is info", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				level := c.String("log-level")
				assert.Equal(t, "info", level)
				return nil
			},
		}

		err := app.Run([]string{"test"})
		require.NoError(t, err)
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				level := c.String("log-level")
				assert.Equal(t, "debug", level)
				return nil
			},
		}

		err := app.Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestMain(m *testing.M) {
	// Run tests
	code := m.Run()
	os.Exit(code)
}
