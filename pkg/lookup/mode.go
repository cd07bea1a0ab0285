package lookup

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which structure answers a query.
type Mode string

const (
	// ModeNormal finds exact anagrams of the input.
	ModeNormal Mode = "normal"
	// ModePrefix finds words starting with the input.
	ModePrefix Mode = "prefix"
	// ModeSuffix finds words ending with the input.
	ModeSuffix Mode = "suffix"
	// ModePattern finds words of the input's length matching it, '_' and '?' being wildcards.
	ModePattern Mode = "pattern"
)

// ErrInvalidMode is returned by ParseMode for a token outside the four modes.
var ErrInvalidMode = errors.New("invalid lookup mode")

// Modes lists every recognized mode.
var Modes = []Mode{ModeNormal, ModePrefix, ModeSuffix, ModePattern}

// ParseMode maps a raw option token onto a Mode. Tokens are matched exactly,
// after trimming surrounding whitespace.
func ParseMode(token string) (Mode, error) {
	m := Mode(strings.TrimSpace(token))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, token)
	}
	return m, nil
}

// Valid reports whether m is one of the four recognized modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeNormal, ModePrefix, ModeSuffix, ModePattern:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}
