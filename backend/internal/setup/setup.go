package setup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/mateoroldos/personal-blog/backend/internal/handler"
	"github.com/mateoroldos/personal-blog/backend/internal/provider/github"
	"github.com/mateoroldos/personal-blog/backend/internal/provider/mailerlite"
	"github.com/mateoroldos/personal-blog/backend/internal/provider/resend"
	"github.com/mateoroldos/personal-blog/backend/internal/service"
	"github.com/mateoroldos/personal-blog/backend/internal/storage/cache"
	"github.com/mateoroldos/personal-blog/backend/internal/storage/fs"
	"github.com/mateoroldos/personal-blog/backend/internal/utils/email"
	"github.com/mateoroldos/personal-blog/backend/internal/utils/markdown"
	"github.com/mateoroldos/personal-blog/shared/config"
	"github.com/mateoroldos/personal-blog/shared/logger"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Content *service.Content
	Feed    *service.Feed
	Handler *handler.Handler
	Redis   *redis.Client // nil when star counts are cached in process
}

// LoadContent reads and renders the content tree under contentDir.
func LoadContent(contentDir string) (*service.Content, error) {
	storage, err := fs.New(contentDir, markdown.New())
	if err != nil {
		return nil, err
	}
	return service.NewContent(storage)
}

func NewFeed(cfg *config.Config) *service.Feed {
	return service.NewFeed(service.FeedInfo{
		SiteURL:     cfg.Public.Site.URL,
		Title:       cfg.Public.Site.Title,
		Description: cfg.Public.Site.Description,
		Language:    cfg.Public.Site.Language,
	})
}

// SetupDependencies initializes all dependencies required for the application.
// ctx bounds background work such as the star cache janitor.
func SetupDependencies(ctx context.Context, cfg *config.Config, contentDir string) (*Dependencies, error) {
	content, err := LoadContent(contentDir)
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", contentDir, err)
	}
	logger.Log.Info("content loaded", "posts", len(content.Posts()), "projects", len(content.Projects()))

	pub := cfg.Public
	httpClient := &http.Client{Timeout: pub.HTTPTimeout}

	composer, err := email.New(pub.Email.From, pub.Email.To, pub.Email.Subject, pub.Email.Template)
	if err != nil {
		return nil, err
	}
	gateway := service.NewGateway(
		resend.New(pub.Resend.BaseURL, cfg.ResendAPIKey(), httpClient),
		mailerlite.New(pub.MailerLite.BaseURL, pub.MailerLite.GroupID, cfg.MailerLiteAPIKey(), httpClient),
		composer,
	)

	deps := &Dependencies{Config: cfg, Content: content, Feed: NewFeed(cfg)}

	var starCache service.StarCache
	if pub.Redis.Addr != "" {
		deps.Redis = redis.NewClient(&redis.Options{
			Addr:     pub.Redis.Addr,
			Password: cfg.RedisPassword().Reveal(),
			DB:       pub.Redis.DB,
		})
		starCache = cache.NewRedis(deps.Redis, pub.GitHub.StarTTL)
		logger.Log.Info("caching star counts in redis", "addr", pub.Redis.Addr, "db", pub.Redis.DB)
	} else {
		mem := cache.NewMemory(pub.GitHub.StarTTL)
		mem.StartJanitor(ctx, pub.GitHub.StarTTL)
		starCache = mem
	}

	stars := github.New(pub.GitHub.BaseURL, github.NewHTTPClient(cfg.GitHubToken().Reveal(), pub.HTTPTimeout))
	projects := service.NewProjects(content, stars, starCache)

	deps.Handler = handler.New(gateway, content, deps.Feed, projects, content, cfg)
	return deps, nil
}

// Close releases connections opened by SetupDependencies.
func (d *Dependencies) Close() error {
	if d.Redis != nil {
		return d.Redis.Close()
	}
	return nil
}
