package coursechat

import "strings"

// Similarity computes a Dice coefficient over character bigrams of the
// two strings, in the range [0, 1]. Comparison is case-insensitive and
// whitespace is removed before bigrams are taken. Strings shorter than
// one bigram only score 1 against an identical string.
func Similarity(a, b string) float64 {
	a = normalizeForSimilarity(a)
	b = normalizeForSimilarity(b)
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}

	ab := bigrams(a)
	bb := bigrams(b)
	if len(ab) == 0 || len(bb) == 0 {
		return 0
	}

	counts := make(map[string]int, len(ab))
	for _, g := range ab {
		counts[g]++
	}

	overlap := 0
	for _, g := range bb {
		if counts[g] > 0 {
			counts[g]--
			overlap++
		}
	}

	return 2 * float64(overlap) / float64(len(ab)+len(bb))
}

func normalizeForSimilarity(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

func bigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}
	grams := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		grams = append(grams, string(runes[i:i+2]))
	}
	return grams
}
