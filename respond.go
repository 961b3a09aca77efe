package coursechat

import (
	"fmt"
	"html"
	"strings"
)

// NotSpecified is the placeholder for absent fee or duration values.
const NotSpecified = "Not specified"

// NotFoundNotice is the terminal answer when no course matches. It is a
// normal response, not an error.
const NotFoundNotice = "<p>Course not found. Please contact our support team for more information.</p>"

// NoCoursesNotice is the answer to a listing request over an empty
// catalog.
const NoCoursesNotice = "<p>No courses found.</p>"

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotSpecified
	}
	return s
}

// RenderCourseList renders the full-listing view of catalog names.
func RenderCourseList(names []string) string {
	if len(names) == 0 {
		return NoCoursesNotice
	}
	var b strings.Builder
	b.WriteString("<div><h3><strong>Available Courses</strong></h3><ul>")
	for _, name := range names {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(name))
	}
	b.WriteString("</ul></div>")
	return b.String()
}

// RenderSpecialtyList renders a summary list of the courses whose name
// contains specialty, or a notice when none do.
func RenderSpecialtyList(specialty string, courses []*Course) string {
	var filtered []*Course
	s := strings.ToLower(strings.TrimSpace(specialty))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Name), s) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return fmt.Sprintf("<p>No %s courses found.</p>", html.EscapeString(specialty))
	}
	return RenderSummaries(filtered)
}

// RenderSummaries renders the summary view: one line per course with
// name, duration and fee.
func RenderSummaries(courses []*Course) string {
	if len(courses) == 0 {
		return NotFoundNotice
	}
	var b strings.Builder
	b.WriteString("<div><h3><strong>Matching Courses</strong></h3><ul>")
	for _, c := range courses {
		fmt.Fprintf(&b, "<li><strong>%s</strong> — Duration: %s, Fees: %s</li>",
			html.EscapeString(c.Name),
			html.EscapeString(orNotSpecified(c.DurationText)),
			html.EscapeString(orNotSpecified(c.PriceText)))
	}
	b.WriteString("</ul></div>")
	return b.String()
}

// RenderDetails renders the detail view: name, duration, fee and a
// truncated description, plus eligibilities when present.
func RenderDetails(c *Course) string {
	if c == nil {
		return NotFoundNotice
	}
	desc := c.ShortDescription
	if strings.TrimSpace(desc) == "" {
		desc = "No description available."
	}
	var b strings.Builder
	b.WriteString("<div>")
	fmt.Fprintf(&b, "<h3><strong>%s</strong></h3>", html.EscapeString(c.Name))
	fmt.Fprintf(&b, "<p><strong>Duration:</strong> %s</p>", html.EscapeString(orNotSpecified(c.DurationText)))
	fmt.Fprintf(&b, "<p><strong>Fees:</strong> %s</p>", html.EscapeString(orNotSpecified(c.PriceText)))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(Truncate(desc, DescriptionLimit)))
	if len(c.Eligibilities) > 0 {
		b.WriteString("<p><strong>Eligibility:</strong></p><ul>")
		for _, e := range c.Eligibilities {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(e))
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</div>")
	return b.String()
}

// RenderAnswer renders a MatchResult according to the classified intent.
// Multiple matches always render as summaries; a single match renders as
// a summary for fee or duration questions and as the detail view
// otherwise.
func RenderAnswer(cl Classification, result MatchResult) string {
	switch result.Kind {
	case MatchSingle:
		if cl.Intent == IntentFeesOrDuration {
			return RenderSummaries(result.Courses)
		}
		return RenderDetails(result.Courses[0])
	case MatchMultiple:
		return RenderSummaries(result.Courses)
	default:
		return NotFoundNotice
	}
}
