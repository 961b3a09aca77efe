// Package fs provides a file-based implementation of
// coursechat.CatalogSource for loading course catalogs from JSON files.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mrunalid-blip/coursechat"
)

// Ensure Source implements coursechat.CatalogSource at compile time.
var _ coursechat.CatalogSource = (*Source)(nil)

// Source loads course records from a JSON catalog file. The file may
// contain a flat list of courses or a top-level object whose recognized
// keys each nest course lists.
type Source struct {
	path string
}

// NewSource creates a new Source reading from path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and flattens the catalog file into catalog order. Nameless
// records are dropped; deduplication is left to the catalog store.
func (s *Source) Load(ctx context.Context) ([]*coursechat.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, coursechat.Errorf(coursechat.EINTERNAL, "read catalog %q: %v", s.path, err)
	}

	raws, err := decodeCatalog(data)
	if err != nil {
		return nil, coursechat.Errorf(coursechat.EINVALID, "parse catalog %q: %v", s.path, err)
	}

	courses := make([]*coursechat.Course, 0, len(raws))
	for _, r := range raws {
		if c := r.toCourse(); c != nil {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

// rawCourse mirrors one course record as it appears on disk, with the
// field fallbacks the catalog feed is known to use.
type rawCourse struct {
	CourseName         string      `json:"course_name"`
	Name               string      `json:"name"`
	Duration           any         `json:"duration"`
	DurationInMonths   any         `json:"duration_in_months"`
	DurationText       string      `json:"duration_text"`
	FormattedPrice     string      `json:"formatted_price"`
	Prices             []rawPrice  `json:"prices"`
	Price              any         `json:"price"`
	OneLineDescription string      `json:"one_line_description"`
	Description        string      `json:"description"`
	Details            string      `json:"details"`
	Eligibilities      []string    `json:"eligibilities"`
	Curriculum         []rawModule `json:"curriculum"`
}

type rawPrice struct {
	FormattedPrice string `json:"formatted_price"`
	Currency       string `json:"currency"`
	Price          any    `json:"price"`
}

type rawModule struct {
	ModuleName  string `json:"module_name"`
	Description string `json:"description"`
}

type rawContainer struct {
	Featured   []rawCourse `json:"featured_course"`
	Trending   []rawCourse `json:"trending_courses"`
	All        []rawCourse `json:"all_courses"`
	Courses    []rawCourse `json:"courses"`
	Categories []struct {
		Courses []rawCourse `json:"courses"`
	} `json:"categories"`
}

func decodeCatalog(data []byte) ([]rawCourse, error) {
	var flat []rawCourse
	if err := json.Unmarshal(data, &flat); err == nil {
		return flat, nil
	}

	var container rawContainer
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, err
	}

	var raws []rawCourse
	raws = append(raws, container.Featured...)
	raws = append(raws, container.Trending...)
	raws = append(raws, container.All...)
	raws = append(raws, container.Courses...)
	for _, cat := range container.Categories {
		raws = append(raws, cat.Courses...)
	}
	return raws, nil
}

// toCourse derives a catalog course from a raw record, applying the
// duration and price precedence rules. Returns nil for nameless records.
func (r rawCourse) toCourse() *coursechat.Course {
	name := strings.TrimSpace(r.CourseName)
	if name == "" {
		name = strings.TrimSpace(r.Name)
	}
	if name == "" {
		return nil
	}

	c := &coursechat.Course{
		Name:          name,
		DurationText:  r.durationText(),
		PriceText:     r.priceText(),
		Eligibilities: r.Eligibilities,
	}

	desc := r.OneLineDescription
	if desc == "" {
		desc = r.Description
	}
	if desc == "" {
		desc = r.Details
	}
	c.ShortDescription = coursechat.Truncate(coursechat.StripHTML(desc), coursechat.DescriptionLimit)

	for _, m := range r.Curriculum {
		if m.ModuleName == "" {
			continue
		}
		c.Curriculum = append(c.Curriculum, coursechat.CurriculumModule{
			Name:        m.ModuleName,
			Description: m.Description,
		})
	}
	return c
}

func (r rawCourse) durationText() string {
	if s := asText(r.Duration); s != "" {
		return s
	}
	if s := asText(r.DurationInMonths); s != "" {
		return s + " months"
	}
	return strings.TrimSpace(r.DurationText)
}

func (r rawCourse) priceText() string {
	if s := strings.TrimSpace(r.FormattedPrice); s != "" {
		return s
	}
	if len(r.Prices) > 0 {
		p := r.Prices[0]
		if s := strings.TrimSpace(p.FormattedPrice); s != "" {
			return s
		}
		if amount := asText(p.Price); amount != "" {
			return strings.TrimSpace(p.Currency + " " + amount)
		}
	}
	return asText(r.Price)
}

// asText renders a string-or-number JSON value for display.
func asText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
