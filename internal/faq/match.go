package faq

import "strings"

// Entry is a single FAQ candidate: a question, its canned answer, and the
// catalogue category it belongs to.
type Entry struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// overlapBonus parameters: each distinct token shared between the normalized
// message and question adds 0.02 to the ratio, capped at 0.1. With the cap,
// scores live in [0, 1.1].
const (
	overlapBonusPerToken = 0.02
	overlapBonusCap      = 0.1
)

// Match scans entries for the question most similar to message and returns
// the best candidate with its composite score.
//
// Scoring per candidate:
//
//	score = ratcliffObershelp(norm(message), norm(question)) + overlapBonus
//
// The running maximum keeps the first candidate to reach the best score;
// a later candidate replaces it only on a strictly greater score, so ties
// resolve to the earlier entry. An empty normalized message, or an empty
// candidate list, yields (nil, 0.0).
func Match(message string, entries []Entry) (*Entry, float64) {
	text := Normalize(message)
	if text == "" {
		return nil, 0.0
	}

	var best *Entry
	bestScore := 0.0
	for i := range entries {
		q := Normalize(entries[i].Question)
		score := ratcliffObershelp(text, q) + overlapBonus(text, q)
		if score > bestScore {
			best = &entries[i]
			bestScore = score
		}
	}
	return best, bestScore
}

// overlapBonus counts distinct whitespace-separated tokens common to both
// normalized strings (set intersection, not multiset) and converts the count
// into the capped bonus.
func overlapBonus(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	as := make(map[string]struct{})
	for _, t := range strings.Fields(a) {
		as[t] = struct{}{}
	}
	shared := 0
	seen := make(map[string]struct{})
	for _, t := range strings.Fields(b) {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := as[t]; ok {
			shared++
		}
	}
	bonus := float64(shared) * overlapBonusPerToken
	if bonus > overlapBonusCap {
		bonus = overlapBonusCap
	}
	return bonus
}

// ratcliffObershelp computes the classic Ratcliff/Obershelp similarity ratio
// 2*M/T, where M is the total length of matching blocks found by recursively
// locating the longest common contiguous block and T is the combined length
// of both strings. This is the same "ratio of matched characters" definition
// used by sequence-alignment matchers; the 0.67 chat threshold is tuned
// against this exact metric, so a Levenshtein-style ratio must not be
// substituted here.
func ratcliffObershelp(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	t := len(ra) + len(rb)
	if t == 0 {
		return 1.0
	}
	m := matchingRunes(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(m) / float64(t)
}

// matchingRunes returns the total length of non-overlapping matching blocks
// in a[alo:ahi] vs b[blo:bhi]: the longest common block plus, recursively,
// the matches to its left and right.
func matchingRunes(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingRunes(a, b, alo, i, blo, j)
	total += matchingRunes(a, b, i+size, ahi, j+size, bhi)
	return total
}

// longestMatch finds the longest contiguous block common to a[alo:ahi] and
// b[blo:bhi]. Among equally long blocks it prefers the one starting earliest
// in a, and for that one the earliest in b (comparisons are strictly
// greater, so the first block found wins ties).
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	// j2len[j] holds the length of the common suffix ending at (i-1, j).
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}
