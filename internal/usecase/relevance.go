package usecase

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Scoring weights for query-to-result relevance. Query coverage
// dominates: a result containing every query token is almost always
// the right product, however long its full title is.
const (
	queryCoverageWeight  = 0.60
	resultCoverageWeight = 0.20
	jaccardWeight        = 0.20
	substringBonus       = 10.0
	fuzzyTokenWeight     = 0.8
	fuzzyMinTokenLen     = 4
	fuzzyEditDistance    = 1
)

// RelevanceScorer ranks scraped products against the original query.
type RelevanceScorer struct {
	enableFuzzy bool
}

// NewRelevanceScorer creates a scorer. Fuzzy token matching tolerates
// single-letter typos and plural/singular drift in store catalogs.
func NewRelevanceScorer(enableFuzzy bool) *RelevanceScorer {
	return &RelevanceScorer{enableFuzzy: enableFuzzy}
}

// Score computes a 0-100 relevance of a product name for a query.
func (s *RelevanceScorer) Score(query, productName string) float64 {
	queryTokens := tokenize(query)
	productTokens := tokenize(productName)
	if len(queryTokens) == 0 || len(productTokens) == 0 {
		return 0
	}

	queryMatched := s.matchCount(queryTokens, productTokens)
	productMatched := s.matchCount(productTokens, queryTokens)

	queryCoverage := queryMatched / float64(len(queryTokens))
	productCoverage := productMatched / float64(len(productTokens))

	union := len(tokenUnion(queryTokens, productTokens))
	jaccard := queryMatched / float64(union)

	score := (queryCoverage*queryCoverageWeight +
		productCoverage*resultCoverageWeight +
		jaccard*jaccardWeight) * 100

	normalizedQuery := Normalize(query)
	normalizedProduct := Normalize(productName)
	if len(normalizedQuery) > 3 && strings.Contains(normalizedProduct, normalizedQuery) {
		score += substringBonus
	}

	if score > 100 {
		score = 100
	}
	return score
}

// matchCount counts tokens of a that appear in b, exactly or (when
// enabled) within the fuzzy edit distance. Fuzzy hits count at reduced
// weight so exact matches still rank first.
func (s *RelevanceScorer) matchCount(a, b []string) float64 {
	set := make(map[string]bool, len(b))
	for _, token := range b {
		set[token] = true
	}

	var matched float64
	for _, token := range a {
		if set[token] {
			matched++
			continue
		}
		if s.enableFuzzy && s.fuzzyContains(token, b) {
			matched += fuzzyTokenWeight
		}
	}
	return matched
}

// fuzzyContains reports whether any candidate is within the edit
// distance of the token. Short tokens are excluded; at three letters a
// distance of one turns "pan" into "paz".
func (s *RelevanceScorer) fuzzyContains(token string, candidates []string) bool {
	if len(token) < fuzzyMinTokenLen {
		return false
	}
	for _, candidate := range candidates {
		if len(candidate) < fuzzyMinTokenLen {
			continue
		}
		if fuzzy.LevenshteinDistance(token, candidate) <= fuzzyEditDistance {
			return true
		}
	}
	return false
}

// tokenize splits text into normalized tokens, dropping single
// characters and bare numbers (sizes are handled by the measurement
// extractor, not relevance).
func tokenize(s string) []string {
	words := strings.Fields(Normalize(s))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= 1 || isNumeric(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

func tokenUnion(a, b []string) map[string]bool {
	set := make(map[string]bool, len(a)+len(b))
	for _, token := range a {
		set[token] = true
	}
	for _, token := range b {
		set[token] = true
	}
	return set
}
