// Package cli runs an interactive lookup loop on the terminal, used for
// exploring a corpus and debugging the engine.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/lookup"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler reads lines from stdin, runs each as a query or a command,
// and prints styled results. Flags control the starting mode, the
// number of printed results, the input length cap and filtering.
type InputHandler struct {
	finder       lookup.Finder
	completer    suggest.ICompleter
	mode         lookup.Mode
	limit        int
	maxInput     int
	noFilter     bool
	reader       io.Reader
	out          io.Writer
	logger       *log.Logger
	requestCount int
}

// NewInputHandler creates a handler on stdin/stdout.
// An invalid mode falls back to normal; completer may be nil.
func NewInputHandler(finder lookup.Finder, completer suggest.ICompleter, mode lookup.Mode, limit, maxInput int, noFilter bool) *InputHandler {
	if !mode.Valid() {
		mode = lookup.ModeNormal
	}
	return &InputHandler{
		finder:    finder,
		completer: completer,
		mode:      mode,
		limit:     limit,
		maxInput:  maxInput,
		noFilter:  noFilter,
		reader:    os.Stdin,
		out:       os.Stdout,
		logger:    logger.New("cli"),
	}
}

// WithIO swaps the handler's input and output streams.
func (h *InputHandler) WithIO(r io.Reader, w io.Writer) *InputHandler {
	h.reader = r
	h.out = w
	return h
}

// Mode returns the current query mode.
func (h *InputHandler) Mode() lookup.Mode {
	return h.mode
}

// Start runs the loop until the input ends. EOF is a normal exit.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, headerStyle.Render("wordfind"), dimStyle.Render("type a word and press Enter, :help for commands (Ctrl+C to exit)"))

	scanner := bufio.NewScanner(h.reader)
	for {
		fmt.Fprint(h.out, modeStyle.Render(h.mode.String())+" > ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		h.handleLine(scanner.Text())
	}
}

// handleLine parses one line and runs it
func (h *InputHandler) handleLine(line string) {
	cmd, err := parseLine(line)
	if err != nil {
		h.logger.Error(err)
		return
	}

	switch cmd.kind {
	case cmdNone:
	case cmdSetMode:
		h.mode = cmd.mode
		fmt.Fprintln(h.out, dimStyle.Render("mode:"), modeStyle.Render(h.mode.String()))
	case cmdHelp:
		fmt.Fprintln(h.out, helpText)
	case cmdStats:
		stats := h.finder.Stats()
		if h.completer != nil {
			for k, v := range h.completer.Stats() {
				stats[k] = v
			}
		}
		stats["requests"] = h.requestCount
		renderStats(h.out, stats)
	case cmdComplete:
		if h.accept(cmd.arg) {
			h.complete(cmd.arg)
		}
	case cmdDefine:
		if h.accept(cmd.arg) {
			h.define(cmd.arg)
		}
	case cmdQuery:
		if h.accept(cmd.arg) {
			mode := cmd.mode
			if mode == "" {
				mode = h.mode
			}
			h.query(mode, cmd.arg)
		}
	}
}

// accept applies the length cap and, unless disabled, input filtering
func (h *InputHandler) accept(input string) bool {
	if h.maxInput > 0 && utils.RuneLen(input) > h.maxInput {
		h.logger.Errorf("Input too long (max %d characters): %s", h.maxInput, input)
		return false
	}
	if h.noFilter {
		log.Debug("Input filtering disabled")
		return true
	}
	if !utils.IsValidInput(input) {
		h.logger.Warnf("Input filtered out: %q", input)
		return false
	}
	return true
}

func (h *InputHandler) query(mode lookup.Mode, input string) {
	h.requestCount++
	start := time.Now()
	records := h.finder.QueryAll(input, mode).Sorted()
	h.logger.Debugf("Took [ %v ] for %s '%s'", time.Since(start), mode, input)

	if len(records) == 0 {
		h.logger.Warnf("No %s matches for '%s'", mode, input)
		return
	}
	renderRecords(h.out, mode, input, records, h.limit)
}

func (h *InputHandler) define(word string) {
	h.requestCount++
	records := lookup.NewSet(h.finder.Define(word)...).Sorted()
	if len(records) == 0 {
		h.logger.Warnf("No definitions for '%s'", word)
		return
	}
	for _, r := range records {
		fmt.Fprintf(h.out, "%s  %s\n", wordStyle.Render(r.Word), defStyle.Render(r.Definition))
	}
}

func (h *InputHandler) complete(prefix string) {
	if h.completer == nil {
		h.logger.Error("Completion is not available")
		return
	}
	h.requestCount++
	suggestions := h.completer.Complete(prefix, h.limit)
	if len(suggestions) == 0 {
		h.logger.Warnf("No completions for '%s'", prefix)
		return
	}
	renderSuggestions(h.out, prefix, suggestions)
}
