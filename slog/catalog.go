package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mrunalid-blip/coursechat"
)

// Ensure LoggingCatalog implements coursechat.CatalogService.
var _ coursechat.CatalogService = (*LoggingCatalog)(nil)

// LoggingCatalog wraps a CatalogService with reload and search logging.
// Plain reads delegate without logging.
type LoggingCatalog struct {
	next   coursechat.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalog creates a new LoggingCatalog.
func NewLoggingCatalog(next coursechat.CatalogService, logger *slog.Logger) *LoggingCatalog {
	return &LoggingCatalog{next: next, logger: logger}
}

// Courses delegates to the wrapped service.
func (c *LoggingCatalog) Courses(ctx context.Context) ([]*coursechat.Course, error) {
	return c.next.Courses(ctx)
}

// FindCourseByName delegates to the wrapped service.
func (c *LoggingCatalog) FindCourseByName(ctx context.Context, name string) (*coursechat.Course, error) {
	return c.next.FindCourseByName(ctx, name)
}

// SearchCourses delegates to the wrapped service and logs the hit count.
func (c *LoggingCatalog) SearchCourses(ctx context.Context, query string) (hits []*coursechat.Course, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("catalog search",
			"query", query,
			"hits", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SearchCourses(ctx, query)
}

// CourseNames delegates to the wrapped service.
func (c *LoggingCatalog) CourseNames(ctx context.Context) ([]string, error) {
	return c.next.CourseNames(ctx)
}

// hasher is implemented by catalog stores that expose a content hash of
// their current snapshot.
type hasher interface {
	Hash() uint64
}

// Reload delegates to the wrapped service and logs the outcome,
// including whether the snapshot content actually changed when the store
// exposes a content hash. A reload failure is a warning: the catalog
// degrades to empty, the service stays up.
func (c *LoggingCatalog) Reload(ctx context.Context) error {
	begin := time.Now()

	var before uint64
	h, hashed := c.next.(hasher)
	if hashed {
		before = h.Hash()
	}

	if err := c.next.Reload(ctx); err != nil {
		c.logger.Warn("catalog reload failed, serving empty catalog",
			"duration", time.Since(begin),
			"err", err,
		)
		return err
	}

	names, _ := c.next.CourseNames(ctx)
	attrs := []any{
		"courses", len(names),
		"duration", time.Since(begin),
	}
	if hashed {
		attrs = append(attrs, "changed", h.Hash() != before)
	}
	c.logger.Info("catalog reloaded", attrs...)
	return nil
}
