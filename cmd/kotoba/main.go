// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/kotoba"
	"github.com/poiesic/kotoba/pipeline"
	"github.com/poiesic/kotoba/vocab"
)

func main() {
	app := &cli.App{
		Name:   "kotoba",
		Usage:  "Enrich Japanese vocabulary lists for flashcard decks",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Enrich a vocabulary file, resuming from the last checkpoint",
				Action: runCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "vocab",
						Usage:    "Path to the chapter-grouped vocabulary JSON file",
						Required: true,
					},
					&cli.BoolFlag{Name: "no-english", Usage: "Skip English meanings and kanji readings"},
					&cli.BoolFlag{Name: "no-audio", Usage: "Skip audio synthesis"},
					&cli.BoolFlag{Name: "no-pitch", Usage: "Skip pitch accent diagrams"},
					&cli.BoolFlag{Name: "no-stroke", Usage: "Skip stroke order diagrams"},
					&cli.BoolFlag{Name: "no-sentences", Usage: "Skip example sentence generation"},
					&cli.BoolFlag{Name: "offline", Usage: "No network calls, serve remote providers from cache"},
					&cli.BoolFlag{Name: "force-restart", Usage: "Discard checkpoint and records, keep caches"},
					&cli.DurationFlag{
						Name:  "delay",
						Usage: "Minimum spacing between calls per remote provider",
						Value: 500 * time.Millisecond,
					},
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "OpenAI-compatible host for example sentences (empty disables them)",
					},
					&cli.StringFlag{
						Name:  "llm-model",
						Usage: "Model name for example sentences",
					},
					&cli.StringFlag{
						Name:  "tts-host",
						Usage: "OpenAI-compatible speech host for audio",
					},
					&cli.StringFlag{
						Name:  "tts-voice",
						Usage: "Voice preset for audio synthesis",
					},
					&cli.StringFlag{
						Name:  "pitch-data",
						Usage: "Path to a pitch accent table overriding the built-in one",
					},
					&cli.StringFlag{
						Name:  "hanviet-data",
						Usage: "Path to a Sino-Vietnamese character map overriding the built-in one",
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts for transient provider failures",
						Value: 2,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Concurrent provider calls per word (0 = automatic)",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N words",
						Value: 10,
					},
				),
			},
			{
				Name:   "status",
				Usage:  "Show the current checkpoint",
				Action: statusCommand,
				Flags:  databaseFlags(),
			},
			{
				Name:   "reset",
				Usage:  "Discard the checkpoint and all enriched records, keeping caches",
				Action: resetCommand,
				Flags:  databaseFlags(),
			},
			{
				Name:   "export",
				Usage:  "Write processed records and media files to a directory",
				Action: exportCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output directory",
						Value:   "./output",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
	}
}

func runCommand(c *cli.Context) error {
	collection, err := vocab.Load(c.String("vocab"))
	if err != nil {
		return err
	}

	cfg := kotoba.DefaultConfig()
	cfg.NoEnglish = c.Bool("no-english")
	cfg.NoAudio = c.Bool("no-audio")
	cfg.NoPitch = c.Bool("no-pitch")
	cfg.NoStroke = c.Bool("no-stroke")
	cfg.NoSentences = c.Bool("no-sentences")
	cfg.Offline = c.Bool("offline")
	cfg.Delay = c.Duration("delay")
	cfg.MaxRetries = c.Int("max-retries")
	cfg.RetryDelay = c.Duration("retry-delay")
	cfg.PoolSize = c.Int("pool-size")
	cfg.LLMHost = c.String("llm-host")
	cfg.LLMModel = c.String("llm-model")
	cfg.TTSHost = c.String("tts-host")
	cfg.TTSVoice = c.String("tts-voice")
	cfg.PitchDataPath = c.String("pitch-data")
	cfg.HanVietDataPath = c.String("hanviet-data")

	p, err := kotoba.Open(c.String("db"), cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer p.Close()

	// Stop cleanly between words on Ctrl-C; the checkpoint keeps what is
	// already done.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Vocabulary: %s (%d words)\n", c.String("vocab"), len(collection.Items))
	fmt.Fprintf(os.Stderr, "Providers: %s\n", strings.Join(p.ProviderNames(), ", "))

	summary, err := p.Run(ctx, collection,
		pipeline.WithForceRestart(c.Bool("force-restart")),
		pipeline.WithProgress(os.Stderr, c.Int("report-interval")),
	)
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(summary))
	if summary.State == pipeline.StateInterrupted {
		fmt.Fprintf(os.Stderr, "Interrupted. Re-run to resume from word %d.\n", summary.ResumeIndex+1)
	}
	return nil
}

func statusCommand(c *cli.Context) error {
	p, err := openStores(c)
	if err != nil {
		return err
	}
	defer p.Close()

	cp, err := p.Status(context.Background())
	if err != nil {
		return err
	}
	if cp == nil {
		fmt.Println("No checkpoint. Nothing has been processed yet.")
		return nil
	}

	fmt.Printf("Processed words: %d\n", cp.Processed)
	fmt.Printf("Source digest:   %s\n", cp.SourceDigest)
	fmt.Printf("Last updated:    %s\n", cp.UpdatedAt.Format(time.RFC3339))
	return nil
}

func resetCommand(c *cli.Context) error {
	p, err := openStores(c)
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Reset(context.Background()); err != nil {
		return err
	}
	fmt.Println("Checkpoint and records discarded. Provider caches kept.")
	return nil
}

func exportCommand(c *cli.Context) error {
	p, err := openStores(c)
	if err != nil {
		return err
	}
	defer p.Close()

	manifest, err := p.Export(context.Background(), c.String("out"))
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d records and %d media files to %s\n",
		manifest.Records, manifest.MediaFiles, manifest.Dir)
	return nil
}

// openStores opens the pipeline for store-only commands, no providers
// needed beyond the offline defaults.
func openStores(c *cli.Context) (*kotoba.Pipeline, error) {
	cfg := kotoba.DefaultConfig()
	cfg.Offline = true
	p, err := kotoba.Open(c.String("db"), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return p, nil
}

func renderSummary(summary *pipeline.Summary) string {
	names := make([]string, 0, len(summary.Providers))
	for name := range summary.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		stats := summary.Providers[name]
		rows = append(rows, []string{
			name,
			strconv.Itoa(stats.Success),
			strconv.Itoa(stats.Unavailable),
			strconv.Itoa(stats.FromCache),
			strconv.Itoa(stats.Fetched),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Run %s: %d/%d words processed in %s\n",
		summary.State, summary.Processed, summary.Total, summary.Elapsed.Round(time.Millisecond))
	b.WriteString(renderTable(
		[]string{"Provider", "Success", "Unavailable", "Cache hits", "Fetched"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
	))
	return b.String()
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return nil
}
