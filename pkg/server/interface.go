/*
Package server implements msgpack IPC for word lookup services.

Clients write msgpack-encoded requests to the server's stdin and read
msgpack-encoded responses from its stdout, one response per request, in order.
A status frame {"status": "ready"} is written before the first request is read.

# Requests

Every request carries an ID that is echoed back and an action:

	{"id": "q1", "action": "find", "input": "cat", "option_type": "normal"}
	{"id": "q2", "input": "c_t", "option_type": "pattern"}
	{"id": "q3", "input": "cat", "modes": ["normal", "prefix"]}
	{"id": "c1", "action": "complete", "input": "sta", "l": 5}
	{"id": "d1", "action": "define", "input": "stone"}
	{"id": "s1", "action": "stats"}

An empty action means "find". option_type is a raw token; a token outside
normal, prefix, suffix and pattern is not an error and returns no records.
When modes is set it takes precedence and the results of every mode are merged.

# Responses

find and define answer with the matching records, sorted by word then definition:

	{"id": "q1", "records": [{"word": "act", "definition": "..."}, ...], "c": 3, "t": 41}

complete answers with headwords and their definition counts:

	{"id": "c1", "s": [{"w": "stand", "n": 2}], "c": 1, "t": 12}

Failures such as an oversized input or an unknown action produce an error frame:

	{"id": "q9", "e": "input exceeds maximum length of 64 characters", "c": 400}

Timings in "t" are microseconds.
*/
package server

import "github.com/bastiangx/wordfind/pkg/lookup"

// Request actions
const (
	ActionFind     = "find"
	ActionComplete = "complete"
	ActionDefine   = "define"
	ActionStats    = "stats"
	ActionHealth   = "health"
)

// Request is the single request shape; fields unused by an action are ignored
type Request struct {
	ID         string   `msgpack:"id"`
	Action     string   `msgpack:"action,omitempty"`
	Input      string   `msgpack:"input"`
	OptionType string   `msgpack:"option_type,omitempty"`
	Modes      []string `msgpack:"modes,omitempty"`
	Limit      int      `msgpack:"l,omitempty"`
}

// FindResponse answers find and define requests
type FindResponse struct {
	ID        string          `msgpack:"id"`
	Records   []lookup.Record `msgpack:"records"`
	Count     int             `msgpack:"c"`
	TimeTaken int64           `msgpack:"t"`
	Truncated bool            `msgpack:"truncated,omitempty"`
}

// CompletionSuggestion - one completed headword
type CompletionSuggestion struct {
	Word        string `msgpack:"w"`
	Definitions int    `msgpack:"n"`
}

// CompletionResponse answers complete requests
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// StatusResponse answers stats and health requests, and announces readiness
type StatusResponse struct {
	ID     string         `msgpack:"id,omitempty"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
