package projects

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ServiceOptions configures a Service
type ServiceOptions struct {
	User    string
	PerPage int
	TTL     time.Duration
	// FailureTTL is how long a failed fetch keeps serving the fallback before
	// the source is tried again. Zero means DefaultFailureTTL.
	FailureTTL time.Duration
	Logger     *slog.Logger
}

// DefaultFailureTTL bounds how often a failing source is retried
const DefaultFailureTTL = 30 * time.Second

// Service loads the project listing, substituting the fallback list whenever
// the source fails. A nil source always serves the fallback.
type Service struct {
	source  Source
	cache   Cache
	user    string
	perPage int
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time

	failureTTL time.Duration

	mu sync.Mutex
	// fallbackUntil is guarded by mu
	fallbackUntil time.Time
}

func NewService(source Source, cache Cache, opts ServiceOptions) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = 30
	}

	failureTTL := opts.FailureTTL
	if failureTTL <= 0 {
		failureTTL = DefaultFailureTTL
	}

	return &Service{
		source:     source,
		cache:      cache,
		user:       opts.User,
		perPage:    perPage,
		ttl:        opts.TTL,
		logger:     logger,
		now:        time.Now,
		failureTTL: failureTTL,
	}
}

func (s *Service) cacheKey() string {
	return fmt.Sprintf("%s:%d", s.user, s.perPage)
}

// List returns the current listing. It never fails.
func (s *Service) List(ctx context.Context) Listing {
	if list, ok := s.cached(ctx); ok {
		return Listing{Projects: list, Origin: OriginCache}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another request may have filled the cache while we waited
	if list, ok := s.cached(ctx); ok {
		return Listing{Projects: list, Origin: OriginCache}
	}

	// a recent failure answers waiters without another upstream round trip
	if s.source == nil || s.now().Before(s.fallbackUntil) {
		return Listing{Projects: Fallback(), Origin: OriginFallback}
	}

	list, err := s.source.ListProjects(ctx, s.user, s.perPage)
	if err != nil {
		s.fallbackUntil = s.now().Add(s.failureTTL)
		s.logger.Warn("project fetch failed, serving fallback list",
			"user", s.user,
			"retry_after", s.failureTTL,
			"error", err,
		)
		return Listing{Projects: Fallback(), Origin: OriginFallback}
	}
	s.fallbackUntil = time.Time{}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.Set(ctx, s.cacheKey(), list, s.ttl); err != nil {
			s.logger.Warn("failed to cache project listing", "error", err)
		}
	}

	s.logger.Debug("project listing loaded", "user", s.user, "count", len(list))
	return Listing{Projects: list, Origin: OriginLive}
}

func (s *Service) cached(ctx context.Context) ([]Project, bool) {
	if s.cache == nil || s.ttl <= 0 {
		return nil, false
	}
	list, err := s.cache.Get(ctx, s.cacheKey())
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("project cache read failed", "error", err)
		}
		return nil, false
	}
	return list, true
}

// Get returns one project of the current listing
func (s *Service) Get(ctx context.Context, id int64) (Project, error) {
	p, err := Find(s.List(ctx).Projects, id)
	if err != nil {
		return Project{}, fmt.Errorf("project %d: %w", id, err)
	}
	return p, nil
}

// Preview returns the n most recently updated projects for the landing page
func (s *Service) Preview(ctx context.Context, n int) []Project {
	list := Apply(s.List(ctx).Projects, Query{Sort: SortUpdated})
	if n > 0 && len(list) > n {
		list = list[:n]
	}
	return list
}
