package faq

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                      "",
		"Hello, World!  123":    "hello world 123",
		"   leading   ":         "leading",
		"UPPER lower":           "upper lower",
		"what's-up?":            "what s up",
		"tabs\tand\nnewlines":   "tabs and newlines",
		"!!!":                   "",
		"a---b___c":             "a b c",
		"Do you ship to the UK": "do you ship to the uk",
		"₹1,000 order":          "1 000 order",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Hello, World!  123", "already normal", "  Mixed CASE 42 ! "}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
