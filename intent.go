package coursechat

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of a question.
type Intent int

// Intent values.
const (
	IntentGeneralDetails Intent = iota
	IntentFeesOrDuration
	IntentListAll
	IntentListBySpecialty
)

// String returns a stable label for logging.
func (i Intent) String() string {
	switch i {
	case IntentFeesOrDuration:
		return "fees_or_duration"
	case IntentListAll:
		return "list_all"
	case IntentListBySpecialty:
		return "list_by_specialty"
	default:
		return "general_details"
	}
}

// Classification is the result of classifying a question.
type Classification struct {
	Intent    Intent
	Specialty string // set only for IntentListBySpecialty
}

var (
	listAllPattern   = regexp.MustCompile(`(?i)all courses|list of courses|available courses|show courses`)
	specialtyPattern = regexp.MustCompile(`(?i)\bcourses\s+(?:in|on|about|for)\s+([a-z][a-z /&-]*[a-z])`)
	specialtyPrefix  = regexp.MustCompile(`(?i)\b([a-z-]{3,})\s+courses?\b`)
	feesPattern      = regexp.MustCompile(`(?i)\b(fee|fees|cost|costs|price|prices|pricing|duration)\b`)
)

// specialtyStopwords are leading words that never name a specialty.
var specialtyStopwords = map[string]bool{
	"all": true, "any": true, "available": true, "list": true,
	"many": true, "more": true, "much": true, "offer": true,
	"other": true, "show": true, "some": true, "the": true,
	"these": true, "those": true, "what": true, "which": true,
	"your": true,
}

// ClassifyIntent derives the intent of a question by pattern
// classification. Listing intents are terminal; the fee/duration vs
// general distinction only affects how a matched course is rendered.
func ClassifyIntent(question string) Classification {
	if listAllPattern.MatchString(question) {
		return Classification{Intent: IntentListAll}
	}
	if m := specialtyPattern.FindStringSubmatch(question); m != nil {
		return Classification{Intent: IntentListBySpecialty, Specialty: strings.TrimSpace(m[1])}
	}
	if m := specialtyPrefix.FindStringSubmatch(question); m != nil {
		if s := strings.ToLower(m[1]); !specialtyStopwords[s] {
			return Classification{Intent: IntentListBySpecialty, Specialty: s}
		}
	}
	if feesPattern.MatchString(question) {
		return Classification{Intent: IntentFeesOrDuration}
	}
	return Classification{Intent: IntentGeneralDetails}
}
