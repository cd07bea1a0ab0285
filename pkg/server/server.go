package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/lookup"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word lookups
type Server struct {
	finder       lookup.Finder
	completer    suggest.ICompleter
	config       *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a new lookup server using stdin/stdout for IPC
func NewServer(finder lookup.Finder, completer suggest.ICompleter, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(finder, completer, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
// completer may be nil, in which case complete requests fail with 503.
func NewServerWithIO(finder lookup.Finder, completer suggest.ICompleter, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		finder:     finder,
		completer:  completer,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
		logger:     logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input stream ends.
// A clean EOF returns nil; a malformed frame is reported and ends the loop,
// since the stream can no longer be trusted.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed the stream")
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	s.requestCount++
	if every := s.config.Server.ReloadEvery; every > 0 && s.requestCount%every == 0 {
		s.reloadConfig()
	}

	switch req.Action {
	case "", ActionFind:
		s.handleFind(req)
	case ActionDefine:
		s.handleDefine(req)
	case ActionComplete:
		s.handleComplete(req)
	case ActionStats:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok", Stats: s.stats()})
	case ActionHealth:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

// validateInput reports an error frame and returns false when input is too long
func (s *Server) validateInput(req Request) bool {
	if limit := s.config.Server.MaxInput; limit > 0 && utils.RuneLen(req.Input) > limit {
		s.sendError(req.ID, fmt.Sprintf("input exceeds maximum length of %d characters", limit), 400)
		s.logger.Debug("Input too long", "id", req.ID, "len", utils.RuneLen(req.Input))
		return false
	}
	return true
}

func (s *Server) handleFind(req Request) {
	if !s.validateInput(req) {
		return
	}

	start := time.Now()
	var results lookup.Set
	if len(req.Modes) > 0 {
		results = s.finder.QueryAll(req.Input, parseModes(req.Modes)...)
	} else {
		results = s.finder.QueryToken(req.Input, req.OptionType)
	}
	s.sendRecords(req.ID, results.Sorted(), start)
}

func (s *Server) handleDefine(req Request) {
	if !s.validateInput(req) {
		return
	}
	start := time.Now()
	s.sendRecords(req.ID, lookup.NewSet(s.finder.Define(req.Input)...).Sorted(), start)
}

func (s *Server) sendRecords(id string, records []lookup.Record, start time.Time) {
	resp := FindResponse{ID: id}
	if limit := s.config.Server.MaxResults; limit > 0 && len(records) > limit {
		records = records[:limit]
		resp.Truncated = true
	}
	resp.Records = records
	resp.Count = len(records)
	resp.TimeTaken = time.Since(start).Microseconds()
	s.sendResponse(resp)
}

func (s *Server) handleComplete(req Request) {
	if s.completer == nil {
		s.sendError(req.ID, "completion is not available", 503)
		return
	}
	if !s.validateInput(req) {
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.config.Server.DefaultLimit
	}

	start := time.Now()
	suggestions := s.completer.Complete(req.Input, limit)
	out := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = CompletionSuggestion{Word: sg.Word, Definitions: sg.Definitions}
	}
	s.sendResponse(CompletionResponse{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) stats() map[string]int {
	stats := map[string]int{"requests": s.requestCount}
	for k, v := range s.finder.Stats() {
		stats[k] = v
	}
	if s.completer != nil {
		for k, v := range s.completer.Stats() {
			stats[k] = v
		}
	}
	return stats
}

func (s *Server) reloadConfig() {
	if s.configPath == "" {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		s.logger.Warnf("Keeping current config, reload failed: %v", err)
		return
	}
	s.config = cfg
	s.logger.Debugf("Reloaded config from %s", s.configPath)
}

// parseModes keeps the recognized tokens, dropping the rest
func parseModes(tokens []string) []lookup.Mode {
	modes := make([]lookup.Mode, 0, len(tokens))
	for _, token := range tokens {
		mode, err := lookup.ParseMode(token)
		if err != nil {
			log.Debugf("Dropping mode: %v", err)
			continue
		}
		modes = append(modes, mode)
	}
	return modes
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		if _, isErr := response.(ErrorResponse); !isErr {
			s.sendError("", "internal server error", 500)
		}
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
