package util

import "testing"

func TestParseFinite(t *testing.T) {
	cases := map[string]float64{
		"3":     3,
		" 2.5 ": 2.5,
		"1e3":   1000,
		"-0":    0,
		"20000": 20000,
		"0.5\n": 0.5,
	}
	for in, want := range cases {
		got, err := ParseFinite(in)
		if err != nil {
			t.Fatalf("ParseFinite(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFinite(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFiniteRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "3 beds", "NaN", "inf", "-Inf", "1e999"} {
		if _, err := ParseFinite(in); err == nil {
			t.Fatalf("ParseFinite(%q): expected error", in)
		}
	}
}
