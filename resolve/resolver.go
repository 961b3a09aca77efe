// Package resolve implements the query resolution pipeline: the ordered
// decision procedure that turns a raw natural-language question into a
// direct catalog answer, an LLM-assisted catalog answer, or a generic
// LLM answer.
package resolve

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mrunalid-blip/coursechat"
)

// Ensure Resolver implements coursechat.Asker at compile time.
var _ coursechat.Asker = (*Resolver)(nil)

// Resolver orchestrates intent classification, catalog matching, LLM
// name resolution and the generic LLM fallback. It is stateless per
// request; concurrent Ask calls are independent.
type Resolver struct {
	// Catalog provides the course snapshot. Required.
	Catalog coursechat.CatalogService

	// Matcher holds the matching cascade and its thresholds. Defaults to
	// coursechat.NewMatcher when nil.
	Matcher *coursechat.Matcher

	// Names proposes a canonical course name when the catalog match
	// fails. Optional; when nil the stage is skipped.
	Names coursechat.NameSuggester

	// General answers questions the catalog cannot. Optional; when nil
	// the pipeline terminates with the not-found notice instead.
	General coursechat.Answerer

	// Logger records degraded capability calls. Defaults to slog.Default.
	Logger *slog.Logger
}

// Ask resolves a question to an HTML answer fragment. External
// capability failures degrade to the next fallback stage; the pipeline
// returns an error only for an empty question (EINVALID) or when the
// final fallback stage itself fails (EUNAVAILABLE).
func (r *Resolver) Ask(ctx context.Context, question string) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", coursechat.Errorf(coursechat.EINVALID, "question required")
	}

	cl := coursechat.ClassifyIntent(q)

	courses, err := r.Catalog.Courses(ctx)
	if err != nil {
		r.logger().Warn("catalog read failed", "err", err)
		courses = nil
	}

	switch cl.Intent {
	case coursechat.IntentListAll:
		names := make([]string, 0, len(courses))
		for _, c := range courses {
			names = append(names, c.Name)
		}
		return coursechat.RenderCourseList(names), nil
	case coursechat.IntentListBySpecialty:
		return coursechat.RenderSpecialtyList(cl.Specialty, courses), nil
	}

	if result := r.matcher().Match(q, courses); result.Kind != coursechat.MatchNone {
		return coursechat.RenderAnswer(cl, result), nil
	}

	if c := r.suggestCourse(ctx, q, courses); c != nil {
		return coursechat.RenderAnswer(cl, coursechat.SingleMatch(c)), nil
	}

	if r.General != nil {
		answer, err := r.General.AnswerGeneral(ctx, q)
		if err != nil {
			r.logger().Error("general answer failed", "question", q, "err", err)
			return "", coursechat.Errorf(coursechat.EUNAVAILABLE, "unable to answer question right now")
		}
		return answer, nil
	}

	return coursechat.NotFoundNotice, nil
}

// suggestCourse delegates name resolution to the LLM capability and
// validates the suggestion at the strict threshold. Any failure or
// rejected suggestion yields nil so the caller falls through to the
// next stage.
func (r *Resolver) suggestCourse(ctx context.Context, question string, courses []*coursechat.Course) *coursechat.Course {
	if r.Names == nil || len(courses) == 0 {
		return nil
	}

	names, err := r.Catalog.CourseNames(ctx)
	if err != nil {
		r.logger().Warn("course names read failed", "err", err)
		return nil
	}

	suggestion, err := r.Names.SuggestCourseName(ctx, question, names)
	if err != nil {
		r.logger().Warn("course name suggestion failed", "question", question, "err", err)
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(suggestion), coursechat.NoMatchToken) {
		return nil
	}

	c := r.matcher().ValidateSuggestion(suggestion, courses)
	if c == nil {
		r.logger().Warn("suggested course name rejected", "suggestion", suggestion)
	}
	return c
}

func (r *Resolver) matcher() *coursechat.Matcher {
	if r.Matcher != nil {
		return r.Matcher
	}
	return coursechat.NewMatcher()
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
