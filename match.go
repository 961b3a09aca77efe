package coursechat

import (
	"strings"
	"unicode/utf8"
)

// Default similarity acceptance thresholds. Lenient applies when matching
// a raw user utterance directly; Strict applies when validating an
// LLM-suggested name, where weak similarity signals a hallucinated
// suggestion that must be rejected rather than coerced to the nearest
// catalog entry.
const (
	DefaultLenientThreshold = 0.35
	DefaultStrictThreshold  = 0.6
)

// MatchKind tags a MatchResult.
type MatchKind int

// MatchKind values.
const (
	MatchNone MatchKind = iota
	MatchSingle
	MatchMultiple
)

// MatchResult is the outcome of resolving a question against the
// catalog: no match, a single confident match, or multiple candidate
// matches in catalog insertion order.
type MatchResult struct {
	Kind    MatchKind
	Courses []*Course
}

// NoMatch returns an empty MatchResult.
func NoMatch() MatchResult {
	return MatchResult{Kind: MatchNone}
}

// SingleMatch returns a MatchResult holding one course.
func SingleMatch(c *Course) MatchResult {
	return MatchResult{Kind: MatchSingle, Courses: []*Course{c}}
}

// MultipleMatches returns a MatchResult holding several courses.
func MultipleMatches(courses []*Course) MatchResult {
	return MatchResult{Kind: MatchMultiple, Courses: courses}
}

// Tokens splits q on whitespace and keeps lowercased tokens longer than
// two characters.
func Tokens(q string) []string {
	var tokens []string
	for _, t := range strings.Fields(strings.ToLower(q)) {
		if utf8.RuneCountInString(t) > 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// SearchByKeyword returns every course whose name contains any token of
// query, substring and case-insensitive, preserving catalog order.
func SearchByKeyword(query string, courses []*Course) []*Course {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return nil
	}
	var hits []*Course
	for _, c := range courses {
		name := strings.ToLower(c.Name)
		for _, t := range tokens {
			if strings.Contains(name, t) {
				hits = append(hits, c)
				break
			}
		}
	}
	return hits
}

// Matcher maps a question or a name candidate to catalog courses through
// an ordered cascade of strategies. It holds no state beyond its
// thresholds and never mutates the catalog.
type Matcher struct {
	// Lenient is the similarity acceptance threshold for raw questions.
	Lenient float64

	// Strict is the similarity acceptance threshold for LLM-suggested
	// names.
	Strict float64
}

// NewMatcher returns a Matcher with the default thresholds.
func NewMatcher() *Matcher {
	return &Matcher{
		Lenient: DefaultLenientThreshold,
		Strict:  DefaultStrictThreshold,
	}
}

// Match resolves a question against courses. Each stage runs only when
// the prior stage yields nothing; ties within a stage are broken by
// catalog insertion order.
func (m *Matcher) Match(question string, courses []*Course) MatchResult {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" || len(courses) == 0 {
		return NoMatch()
	}

	// Stage 1: exact name containment.
	qLen := utf8.RuneCountInString(q)
	for _, c := range courses {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}
		if strings.Contains(q, name) || (qLen > 3 && strings.Contains(name, q)) {
			return SingleMatch(c)
		}
	}

	// Stage 2: keyword substring, refined by token conjunction when
	// several names hit. A standalone disjunctive stage after an empty
	// result here could never fire: its hit set is SearchByKeyword's.
	if hits := SearchByKeyword(q, courses); len(hits) == 1 {
		return SingleMatch(hits[0])
	} else if len(hits) > 1 {
		if and := filterAllTokens(q, hits); len(and) == 1 {
			return SingleMatch(and[0])
		} else if len(and) > 1 {
			return MultipleMatches(and)
		}
		return MultipleMatches(hits)
	}

	// Stage 3: similarity scoring at the lenient threshold.
	if best, score := bestBySimilarity(q, courses); best != nil && score >= m.Lenient {
		return SingleMatch(best)
	}

	return NoMatch()
}

// ValidateSuggestion checks an LLM-suggested course name against the
// catalog: exact match first, then case-insensitive, then similarity at
// the strict threshold. Returns nil when the suggestion is rejected.
func (m *Matcher) ValidateSuggestion(name string, courses []*Course) *Course {
	s := strings.TrimSpace(name)
	if s == "" || strings.EqualFold(s, NoMatchToken) {
		return nil
	}

	for _, c := range courses {
		if c.Name == s {
			return c
		}
	}
	for _, c := range courses {
		if strings.EqualFold(strings.TrimSpace(c.Name), s) {
			return c
		}
	}

	if best, score := bestBySimilarity(s, courses); best != nil && score >= m.Strict {
		return best
	}
	return nil
}

// filterAllTokens returns the courses whose names contain every token of
// q, preserving order.
func filterAllTokens(q string, courses []*Course) []*Course {
	tokens := Tokens(q)
	if len(tokens) == 0 {
		return nil
	}
	var hits []*Course
	for _, c := range courses {
		name := strings.ToLower(c.Name)
		all := true
		for _, t := range tokens {
			if !strings.Contains(name, t) {
				all = false
				break
			}
		}
		if all {
			hits = append(hits, c)
		}
	}
	return hits
}

func bestBySimilarity(q string, courses []*Course) (*Course, float64) {
	var best *Course
	bestScore := 0.0
	for _, c := range courses {
		if score := Similarity(q, c.Name); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore
}
