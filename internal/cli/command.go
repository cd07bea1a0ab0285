package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/wordfind/pkg/lookup"
)

type commandKind int

const (
	cmdNone commandKind = iota
	cmdQuery
	cmdSetMode
	cmdComplete
	cmdDefine
	cmdStats
	cmdHelp
)

// command is one parsed input line.
// For cmdQuery an empty mode means the handler's current mode.
type command struct {
	kind commandKind
	mode lookup.Mode
	arg  string
}

var errMissingArgument = errors.New("missing argument")

// parseLine turns a line into a command.
//
//	cat            query in the current mode
//	prefix cat     query once in prefix mode
//	:mode suffix   switch the current mode
//	:complete ca   headword completion
//	:define cat    exact lookup
//	:stats, :help
//
// A first word that is not a mode token is part of the query.
func parseLine(line string) (command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return command{kind: cmdNone}, nil
	}

	if strings.HasPrefix(line, ":") {
		name, arg, _ := strings.Cut(line[1:], " ")
		arg = strings.TrimSpace(arg)
		switch name {
		case "mode", "m":
			if arg == "" {
				return command{}, fmt.Errorf(":mode: %w", errMissingArgument)
			}
			mode, err := lookup.ParseMode(arg)
			if err != nil {
				return command{}, err
			}
			return command{kind: cmdSetMode, mode: mode}, nil
		case "complete", "c":
			if arg == "" {
				return command{}, fmt.Errorf(":complete: %w", errMissingArgument)
			}
			return command{kind: cmdComplete, arg: arg}, nil
		case "define", "d":
			if arg == "" {
				return command{}, fmt.Errorf(":define: %w", errMissingArgument)
			}
			return command{kind: cmdDefine, arg: arg}, nil
		case "stats":
			return command{kind: cmdStats}, nil
		case "help", "h", "?":
			return command{kind: cmdHelp}, nil
		default:
			return command{}, fmt.Errorf("unknown command :%s", name)
		}
	}

	if head, rest, ok := strings.Cut(line, " "); ok {
		if mode, err := lookup.ParseMode(head); err == nil {
			if rest = strings.TrimSpace(rest); rest != "" {
				return command{kind: cmdQuery, mode: mode, arg: rest}, nil
			}
		}
	}
	return command{kind: cmdQuery, arg: line}, nil
}
