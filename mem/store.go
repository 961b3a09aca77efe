// Package mem provides the in-memory implementation of
// coursechat.CatalogService. The catalog is held as an immutable snapshot
// behind an atomic pointer: reads never block, and Reload replaces the
// snapshot wholesale so concurrent readers never observe a torn catalog.
package mem

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/mrunalid-blip/coursechat"
)

// Ensure Store implements coursechat.CatalogService at compile time.
var _ coursechat.CatalogService = (*Store)(nil)

// Store is a read-mostly course catalog backed by a CatalogSource.
type Store struct {
	source coursechat.CatalogSource

	mu       sync.Mutex // serializes Reload
	snapshot atomic.Pointer[snapshot]
}

// snapshot is one immutable view of the catalog.
type snapshot struct {
	courses []*coursechat.Course
	byName  map[string]*coursechat.Course // key: lowercased, trimmed name
	names   []string
	hash    uint64
}

// NewStore creates a Store over source with an empty catalog. Call
// Reload to populate it.
func NewStore(source coursechat.CatalogSource) *Store {
	s := &Store{source: source}
	s.snapshot.Store(buildSnapshot(nil))
	return s
}

// Reload re-runs the source and atomically swaps in the new snapshot.
// On source failure the catalog becomes empty and the error is returned
// for the caller to log; the store itself never crashes.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses, err := s.source.Load(ctx)
	if err != nil {
		s.snapshot.Store(buildSnapshot(nil))
		return err
	}
	s.snapshot.Store(buildSnapshot(courses))
	return nil
}

// Courses returns every course in catalog insertion order.
func (s *Store) Courses(ctx context.Context) ([]*coursechat.Course, error) {
	return s.snapshot.Load().courses, nil
}

// FindCourseByName retrieves a course by exact name, case-insensitive
// and whitespace-trimmed.
func (s *Store) FindCourseByName(ctx context.Context, name string) (*coursechat.Course, error) {
	key := nameKey(name)
	if key == "" {
		return nil, coursechat.Errorf(coursechat.EINVALID, "course name required")
	}
	c, ok := s.snapshot.Load().byName[key]
	if !ok {
		return nil, coursechat.Errorf(coursechat.ENOTFOUND, "course %q not found", strings.TrimSpace(name))
	}
	return c, nil
}

// SearchCourses returns every course whose name contains any token of
// query longer than two characters, in catalog order.
func (s *Store) SearchCourses(ctx context.Context, query string) ([]*coursechat.Course, error) {
	return coursechat.SearchByKeyword(query, s.snapshot.Load().courses), nil
}

// CourseNames returns the name projection in catalog order.
func (s *Store) CourseNames(ctx context.Context) ([]string, error) {
	return s.snapshot.Load().names, nil
}

// Hash returns a content hash of the current snapshot, usable to detect
// whether a reload actually changed the catalog.
func (s *Store) Hash() uint64 {
	return s.snapshot.Load().hash
}

// Len returns the number of courses in the current snapshot.
func (s *Store) Len() int {
	return len(s.snapshot.Load().courses)
}

// buildSnapshot deduplicates courses by name, first occurrence wins, and
// drops nameless records.
func buildSnapshot(courses []*coursechat.Course) *snapshot {
	snap := &snapshot{byName: make(map[string]*coursechat.Course, len(courses))}
	h := xxhash.New()
	for _, c := range courses {
		if c == nil {
			continue
		}
		key := nameKey(c.Name)
		if key == "" {
			continue
		}
		if _, ok := snap.byName[key]; ok {
			continue
		}
		snap.byName[key] = c
		snap.courses = append(snap.courses, c)
		snap.names = append(snap.names, strings.TrimSpace(c.Name))
		_, _ = h.WriteString(c.Name)
		_, _ = h.WriteString("\x00")
	}
	snap.hash = h.Sum64()
	return snap
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
