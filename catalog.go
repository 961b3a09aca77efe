package coursechat

import "context"

// CatalogSource yields raw course records from an external data source.
// Implementations hide the container shape and file-system mechanics.
type CatalogSource interface {
	// Load reads and flattens the source into catalog order. Failures are
	// returned as coded errors; callers degrade to an empty catalog
	// rather than crashing.
	Load(ctx context.Context) ([]*Course, error)
}

// CatalogService provides read access to the loaded course catalog.
// Reads never block; Reload is the only writer and replaces the catalog
// snapshot atomically, so readers observe either the old or the new
// catalog in full, never a partial mix.
type CatalogService interface {
	// Courses returns every course in catalog insertion order.
	Courses(ctx context.Context) ([]*Course, error)

	// FindCourseByName retrieves a course by exact name, case-insensitive
	// and whitespace-trimmed. Returns ENOTFOUND if no course matches.
	FindCourseByName(ctx context.Context, name string) (*Course, error)

	// SearchCourses returns every course whose name contains any
	// whitespace token of query longer than two characters, substring and
	// case-insensitive, in catalog order.
	SearchCourses(ctx context.Context, query string) ([]*Course, error)

	// CourseNames returns the name projection in catalog order.
	CourseNames(ctx context.Context) ([]string, error)

	// Reload re-runs the source and swaps in the new snapshot. On source
	// failure the catalog becomes empty and the error is returned for
	// logging; the service stays usable.
	Reload(ctx context.Context) error
}
