package utils

import "testing"

func TestIsValidInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"cat", true},
		{"c_t", true},
		{"c?t", true},
		{"café", true},
		{"two words", true},
		{"", false},
		{"   ", false},
		{"ca\x00t", false},
		{"cat\n", false},
		{string([]byte{0xff, 0xfe}), false},
	}
	for _, tc := range tests {
		if got := IsValidInput(tc.input); got != tc.want {
			t.Errorf("IsValidInput(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		123456:   "123,456",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range tests {
		if got := FormatWithCommas(n); got != want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("naïve"); got != 5 {
		t.Errorf("RuneLen = %d, want 5", got)
	}
}
