package utils

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ContainsControlChars checks if a string contains control characters
func ContainsControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// IsOnlySpace checks if a string consists entirely of whitespace
func IsOnlySpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsValidInput checks if a query should be sent to the engine.
// Returns false for empty or blank strings, invalid UTF-8 and control characters.
func IsValidInput(s string) bool {
	if len(s) == 0 || IsOnlySpace(s) {
		return false
	}
	if !utf8.ValidString(s) {
		return false
	}
	return !ContainsControlChars(s)
}

// RuneLen returns the number of runes in s
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}
	result := make([]byte, 0, len(str)+len(str)/3)
	for i := 0; i < len(str); i++ {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, str[i])
	}
	return string(result)
}
