// Copyright 2025 The WordFind Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the word lookup server and its interactive CLI.

WordFind answers four kinds of queries over a corpus of (word, definition)
records: anagrams of the input (normal), words starting with it (prefix),
words ending with it (suffix) and fixed-length patterns where '_' and '?'
match any one character (pattern). Every query returns a set of records;
a word with several definitions appears once per definition.

# Usage

Start the msgpack IPC server on the embedded corpus:

	wordfind

Serve a TSV or SQLite corpus with debug logging:

	wordfind -corpus words.tsv -d
	wordfind -corpus dict.db -table entries

Run the interactive CLI in pattern mode:

	wordfind -c -mode pattern

# Corpus

A corpus is either a delimited file (CSV or TSV, with an optional
"word,definition" header) or a SQLite database holding a table with word
and definition columns. The format is detected from the file header and
extension unless -format is given. Without -corpus the small embedded
corpus is used.

# Configuration

The TOML config lives in the user config dir (wordfind/config.toml) and is
created with defaults when missing:

	[engine]
	case_sensitive = false
	cache_size = 256
	eager_build = true

	[corpus]
	path = ""
	format = ""
	table = "words"

	[server]
	max_input = 64
	max_results = 1000
	default_limit = 10
	reload_every = 100

	[cli]
	default_mode = "normal"
	default_limit = 50
	default_no_filter = false

Flags override the config values. Server mode reloads the [server]
section every reload_every requests.

# IPC Protocol

See package server. Requests and responses are msgpack maps on
stdin/stdout:

	{"id": "q1", "input": "cat", "option_type": "normal"}
	{"id": "q1", "records": [{"word": "act", "definition": "to perform"}], "c": 1, "t": 18}
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/wordfind/internal/cli"
	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/lookup"
	"github.com/bastiangx/wordfind/pkg/server"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordfind"
	gh      = "https://github.com/bastiangx/wordfind"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the corpus, the engine and the completer, then hands over to
// the server or the CLI.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to a custom config file")
	corpusPath := flag.String("corpus", "", "Corpus file (csv, tsv or sqlite); empty uses the embedded corpus")
	corpusFormat := flag.String("format", "", "Corpus format: csv, tsv or sqlite (detected when empty)")
	table := flag.String("table", "", "SQLite table holding word and definition columns")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI instead of the IPC server")
	mode := flag.String("mode", "", "Starting CLI mode: normal, prefix, suffix or pattern")
	limit := flag.Int("limit", 0, fmt.Sprintf("Number of results to print in the CLI (default %d)", defaults.CLI.DefaultLimit))
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only)")
	caseSensitive := flag.Bool("case-sensitive", false, "Match letter case exactly")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if configPath != "" {
		log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))
	}

	// flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "corpus":
			appConfig.Corpus.Path = *corpusPath
		case "format":
			appConfig.Corpus.Format = *corpusFormat
		case "table":
			appConfig.Corpus.Table = *table
		case "mode":
			appConfig.CLI.DefaultMode = *mode
		case "limit":
			appConfig.CLI.DefaultLimit = *limit
		case "no-filter":
			appConfig.CLI.DefaultNoFilter = *noFilter
		case "case-sensitive":
			appConfig.Engine.CaseSensitive = *caseSensitive
		}
	})

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	log.Debug("Runtime", "info", pathResolver.GetRuntimeInfo())
	resolvedCorpus, err := pathResolver.ResolveCorpusPath(appConfig.Corpus.Path)
	if err != nil {
		log.Fatalf("Failed to resolve corpus: %v", err)
	}
	if resolvedCorpus != "" && appConfig.Corpus.Format == "" {
		if f, err := dictionary.DetectFileFormat(resolvedCorpus); err == nil {
			if info, ok := dictionary.GetFormatInfo(f); ok {
				log.Debugf("Corpus format: %s (%s)", info.Name, info.Description)
			}
		}
	}

	ctx := context.Background()
	start := time.Now()
	corpus, err := dictionary.Load(ctx, resolvedCorpus, appConfig.Corpus.Format, appConfig.Corpus.Table)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Debugf("Loaded %d records in %v", len(corpus), time.Since(start))

	normalize := lookup.FoldCase
	if appConfig.Engine.CaseSensitive {
		normalize = lookup.Exact
	}
	engine := lookup.New(corpus,
		lookup.WithNormalizer(normalize),
		lookup.WithLogger(logger.New("engine")),
		lookup.WithCacheSize(appConfig.Engine.CacheSize))
	if appConfig.Engine.EagerBuild {
		if err := engine.Build(ctx); err != nil {
			log.Fatalf("Failed to build lookup structures: %v", err)
		}
	}
	completer := suggest.NewCompleterFromRecords(corpus, normalize)
	log.Debug("Engine ready", "records", engine.Len(), "eager", appConfig.Engine.EagerBuild)

	if *cliMode {
		log.SetReportTimestamp(false)
		startMode, err := lookup.ParseMode(appConfig.CLI.DefaultMode)
		if err != nil {
			log.Warnf("%v, starting in normal mode", err)
			startMode = lookup.ModeNormal
		}
		log.Debug("Input info:",
			"mode", startMode,
			"limit", appConfig.CLI.DefaultLimit,
			"noFilter", appConfig.CLI.DefaultNoFilter)

		inputHandler := cli.NewInputHandler(engine, completer, startMode,
			appConfig.CLI.DefaultLimit, appConfig.Server.MaxInput, appConfig.CLI.DefaultNoFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, completer, appConfig, configPath)
	showStartupInfo(describeCorpus(resolvedCorpus), engine.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordFind ] anagram, prefix, suffix and pattern lookups")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

func describeCorpus(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// showStartupInfo prints basic init info to stderr; stdout carries the IPC stream.
func showStartupInfo(corpus string, records int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" WordFind  ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("corpus: ( %s )", corpus)
	log.Infof("records: %s", utils.FormatWithCommas(records))
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
