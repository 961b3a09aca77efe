package coursechat

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DescriptionLimit caps short descriptions in runes. Longer descriptions
// are truncated with a trailing ellipsis at render time.
const DescriptionLimit = 350

// Course represents one catalog entry. Courses are immutable once loaded;
// the catalog as a whole is replaced atomically on reload.
type Course struct {
	// Name is the canonical display name. It is the dedup and lookup key
	// and is always non-empty for a loaded course.
	Name string `json:"name"`

	// DurationText is the display duration, empty when unknown.
	DurationText string `json:"durationText,omitempty"`

	// PriceText is the display fee, empty when unknown.
	PriceText string `json:"priceText,omitempty"`

	// ShortDescription is HTML-stripped and length-capped.
	ShortDescription string `json:"shortDescription,omitempty"`

	Eligibilities []string           `json:"eligibilities,omitempty"`
	Curriculum    []CurriculumModule `json:"curriculum,omitempty"`
}

// CurriculumModule is one module of a course curriculum.
type CurriculumModule struct {
	Name        string `json:"moduleName"`
	Description string `json:"description"`
}

// Validate returns an error if the course contains invalid fields.
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Errorf(EINVALID, "course name required")
	}
	return nil
}

// StripHTML removes markup from a text fragment and collapses surrounding
// whitespace. Invalid HTML falls back to the input unchanged.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Truncate shortens s to at most limit runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
