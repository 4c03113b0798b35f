package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mateoroldos/personal-blog/shared/domain"
	"github.com/mateoroldos/personal-blog/shared/logger"
)

const defaultStarLookups = 4

type ProjectsService interface {
	WithStars(ctx context.Context) []domain.ProjectEntry
}

type ProjectSource interface {
	Projects() []domain.ProjectEntry
}

type StarCounter interface {
	Stars(ctx context.Context, user, repo string) (int, error)
}

type StarCache interface {
	GetStars(ctx context.Context, repo string) (int, bool, error)
	SetStars(ctx context.Context, repo string, stars int) error
}

type Projects struct {
	source  ProjectSource
	counter StarCounter
	cache   StarCache
	limit   int
}

func NewProjects(source ProjectSource, counter StarCounter, cache StarCache) *Projects {
	return &Projects{source: source, counter: counter, cache: cache, limit: defaultStarLookups}
}

// WithStars returns every project with Stars set. Lookup failures count as 0 stars
// so GitHub being down never breaks the listing.
func (p *Projects) WithStars(ctx context.Context) []domain.ProjectEntry {
	projects := p.source.Projects()

	var g errgroup.Group
	g.SetLimit(p.limit)
	for i := range projects {
		g.Go(func() error {
			stars := p.stars(ctx, projects[i])
			projects[i].Stars = &stars
			return nil
		})
	}
	_ = g.Wait()

	return projects
}

func (p *Projects) stars(ctx context.Context, project domain.ProjectEntry) int {
	log := logger.FromContext(ctx).With("repo", project.RepoPath())
	key := project.RepoPath()

	if p.cache != nil {
		stars, ok, err := p.cache.GetStars(ctx, key)
		if err != nil {
			log.Warn("star cache read failed", "error", err)
		} else if ok {
			return stars
		}
	}

	stars, err := p.counter.Stars(ctx, project.User, project.Repo)
	if err != nil {
		log.Warn("star lookup failed, reporting 0", "error", err)
		return 0
	}

	if p.cache != nil {
		if err := p.cache.SetStars(ctx, key, stars); err != nil {
			log.Warn("star cache write failed", "error", err)
		}
	}
	return stars
}
