// Package dedupe detects duplicate and near-duplicate coverage across
// titles using token-set and bigram-set similarity.
package dedupe

import (
	"strings"
	"unicode"
)

// Similarity thresholds. These are empirically tuned values carried over
// unchanged; headline rewrites vary in how much vocabulary vs. word order
// they preserve, so three metrics are OR-ed together.
var (
	TokenJaccardThreshold  = 0.5
	BigramJaccardThreshold = 0.35
	MinTokenOverlap        = 4
	OverlapRatioThreshold  = 0.75
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "that": {},
	"this": {}, "are": {}, "was": {}, "has": {}, "have": {}, "will": {},
	"after": {}, "over": {}, "into": {}, "its": {}, "his": {}, "her": {},
	"new": {}, "not": {}, "but": {}, "you": {}, "your": {}, "their": {},
	"out": {}, "off": {}, "about": {}, "how": {}, "what": {}, "who": {},
}

// Tokens normalizes a title into significant lowercase tokens: punctuation
// stripped, stop words and tokens of two characters or fewer dropped.
func Tokens(title string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func bigramSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{})
	for i := 0; i+1 < len(tokens); i++ {
		set[tokens[i]+" "+tokens[i+1]] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

// SimilarTitles reports whether two titles cover the same story. A match on
// any one metric is enough.
func SimilarTitles(a, b string) bool {
	ta, tb := Tokens(a), Tokens(b)
	return similarSets(tokenSet(ta), bigramSet(ta), tokenSet(tb), bigramSet(tb))
}

// similarSets is the three-way near-duplicate check over prebuilt token and
// bigram sets; headline rewrites vary in how much vocabulary vs. word order
// they keep, so any one metric matching is enough.
func similarSets(aTokens, aBigrams, bTokens, bBigrams map[string]struct{}) bool {
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return false
	}

	if jaccard(aTokens, bTokens) >= TokenJaccardThreshold {
		return true
	}
	if jaccard(aBigrams, bBigrams) >= BigramJaccardThreshold {
		return true
	}

	inter := overlap(aTokens, bTokens)
	minSize := len(aTokens)
	if len(bTokens) < minSize {
		minSize = len(bTokens)
	}
	return inter >= MinTokenOverlap && float64(inter)/float64(minSize) >= OverlapRatioThreshold
}
