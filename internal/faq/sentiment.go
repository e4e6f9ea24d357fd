package faq

import (
	"strings"

	"github.com/lunara-store/go-store-backend/internal/domain"
)

// negativeKeywords is the fixed vocabulary that flips a message to negative
// sentiment. Matching is substring containment over the normalized text, so
// "delayed" also hits on "delay" and word boundaries are intentionally not
// enforced. The set is unordered; any hit yields the same result.
var negativeKeywords = []string{
	"bad", "worse", "worst", "angry", "annoyed", "upset", "frustrated",
	"disappointed", "hate", "terrible", "awful", "useless", "broken", "late",
	"delay", "delayed", "never", "refund", "cancel", "damaged", "problem",
	"issue", "complaint", "scam", "cheat", "unhappy", "ridiculous", "stupid",
	"slow", "poor", "unacceptable", "disgusting", "rude", "not happy",
	// Normalize turns the apostrophe into a space, so "don't like" is
	// matched via its normalized spelling; "dont like" covers the
	// apostrophe-free typing.
	"don t like", "dont like",
}

// DetectSentiment classifies message tone as negative or neutral.
//
// The message is normalized first; an empty result is neutral. Otherwise the
// first negative keyword found as a substring short-circuits to negative.
// There is no positive class and no intensity scoring.
func DetectSentiment(message string) domain.Sentiment {
	text := Normalize(message)
	if text == "" {
		return domain.SentimentNeutral
	}
	for _, w := range negativeKeywords {
		if strings.Contains(text, w) {
			return domain.SentimentNegative
		}
	}
	return domain.SentimentNeutral
}
