package mock

import (
	"context"

	"github.com/mrunalid-blip/coursechat"
)

var _ coursechat.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of coursechat.CatalogService.
type CatalogService struct {
	CoursesFn          func(ctx context.Context) ([]*coursechat.Course, error)
	FindCourseByNameFn func(ctx context.Context, name string) (*coursechat.Course, error)
	SearchCoursesFn    func(ctx context.Context, query string) ([]*coursechat.Course, error)
	CourseNamesFn      func(ctx context.Context) ([]string, error)
	ReloadFn           func(ctx context.Context) error
}

func (s *CatalogService) Courses(ctx context.Context) ([]*coursechat.Course, error) {
	return s.CoursesFn(ctx)
}

func (s *CatalogService) FindCourseByName(ctx context.Context, name string) (*coursechat.Course, error) {
	return s.FindCourseByNameFn(ctx, name)
}

func (s *CatalogService) SearchCourses(ctx context.Context, query string) ([]*coursechat.Course, error) {
	return s.SearchCoursesFn(ctx, query)
}

func (s *CatalogService) CourseNames(ctx context.Context) ([]string, error) {
	return s.CourseNamesFn(ctx)
}

func (s *CatalogService) Reload(ctx context.Context) error {
	return s.ReloadFn(ctx)
}

var _ coursechat.CatalogSource = (*CatalogSource)(nil)

// CatalogSource is a mock implementation of coursechat.CatalogSource.
type CatalogSource struct {
	LoadFn func(ctx context.Context) ([]*coursechat.Course, error)
}

func (s *CatalogSource) Load(ctx context.Context) ([]*coursechat.Course, error) {
	return s.LoadFn(ctx)
}

// StaticCatalog returns a CatalogService backed by a fixed course slice,
// convenient for pipeline tests with synthetic catalogs.
func StaticCatalog(courses ...*coursechat.Course) *CatalogService {
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
	}
	return &CatalogService{
		CoursesFn: func(context.Context) ([]*coursechat.Course, error) {
			return courses, nil
		},
		FindCourseByNameFn: func(_ context.Context, name string) (*coursechat.Course, error) {
			for _, c := range courses {
				if c.Name == name {
					return c, nil
				}
			}
			return nil, coursechat.Errorf(coursechat.ENOTFOUND, "course %q not found", name)
		},
		SearchCoursesFn: func(_ context.Context, query string) ([]*coursechat.Course, error) {
			return coursechat.SearchByKeyword(query, courses), nil
		},
		CourseNamesFn: func(context.Context) ([]string, error) {
			return names, nil
		},
		ReloadFn: func(context.Context) error {
			return nil
		},
	}
}
