package handler

import (
	"context"

	"github.com/mateoroldos/personal-blog/backend/internal/service"
	"github.com/mateoroldos/personal-blog/shared/config"
	"github.com/mateoroldos/personal-blog/shared/domain"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type FeedBuilder interface {
	Build(posts []domain.BlogEntry) ([]byte, error)
	PostURL(slug domain.Slug) string
}

type Handler struct {
	gateway  service.GatewayService
	content  service.ContentService
	feed     FeedBuilder
	projects service.ProjectsService
	health   HealthChecker
	cfg      *config.Config
}

func New(gateway service.GatewayService, content service.ContentService, feed FeedBuilder, projects service.ProjectsService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		gateway:  gateway,
		content:  content,
		feed:     feed,
		projects: projects,
		health:   health,
		cfg:      cfg,
	}
}
