package faq

import (
	"testing"

	"github.com/lunara-store/go-store-backend/internal/domain"
)

func TestDetectSentiment(t *testing.T) {
	cases := map[string]domain.Sentiment{
		"This is broken and late":               domain.SentimentNegative,
		"Do you ship internationally?":          domain.SentimentNeutral,
		"":                                      domain.SentimentNeutral,
		"   \t  ":                               domain.SentimentNeutral,
		"I want a REFUND now":                   domain.SentimentNegative,
		"my order arrived damaged":              domain.SentimentNegative,
		"please cancel my order":                domain.SentimentNegative,
		"I am not happy with this":              domain.SentimentNegative,
		"I don't like this clasp":               domain.SentimentNegative,
		"I dont like the color":                 domain.SentimentNegative,
		"the delivery was delayed again":        domain.SentimentNegative,
		"lovely earrings, thank you":            domain.SentimentNeutral,
		"what are your customer service hours?": domain.SentimentNeutral,
	}
	for in, want := range cases {
		if got := DetectSentiment(in); got != want {
			t.Errorf("DetectSentiment(%q) = %q; want %q", in, got, want)
		}
	}
}

// Punctuation is stripped before keyword containment, so "broken!!!" still
// counts and casing is irrelevant.
func TestDetectSentiment_NormalizesFirst(t *testing.T) {
	if got := DetectSentiment("BROKEN!!!"); got != domain.SentimentNegative {
		t.Fatalf("got %q, want negative", got)
	}
}
