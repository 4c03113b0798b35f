package handler

import (
	"context"

	"github.com/mateoroldos/personal-blog/backend/internal/service"
	"github.com/mateoroldos/personal-blog/shared/config"
	"github.com/mateoroldos/personal-blog/shared/domain"
)

// MockGatewayService mocks service.GatewayService.
type MockGatewayService struct {
	ContactFunc   func(ctx context.Context, email, message string) service.Result
	SubscribeFunc func(ctx context.Context, email string) service.Result
}

func (m *MockGatewayService) Contact(ctx context.Context, email, message string) service.Result {
	if m.ContactFunc != nil {
		return m.ContactFunc(ctx, email, message)
	}
	return service.Result{Outcome: domain.Accepted, State: domain.Succeeded}
}

func (m *MockGatewayService) Subscribe(ctx context.Context, email string) service.Result {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, email)
	}
	return service.Result{Outcome: domain.Accepted, State: domain.Succeeded}
}

// MockContentService mocks service.ContentService.
type MockContentService struct {
	PostsFunc          func() []domain.BlogEntry
	PublishedPostsFunc func() []domain.BlogEntry
	ProjectsFunc       func() []domain.ProjectEntry
	UniqueTagsFunc     func() []domain.TagID
	ByTagFunc          func(tag domain.TagID) service.TagEntries
}

func (m *MockContentService) Posts() []domain.BlogEntry {
	if m.PostsFunc != nil {
		return m.PostsFunc()
	}
	return nil
}

func (m *MockContentService) PublishedPosts() []domain.BlogEntry {
	if m.PublishedPostsFunc != nil {
		return m.PublishedPostsFunc()
	}
	return nil
}

func (m *MockContentService) Projects() []domain.ProjectEntry {
	if m.ProjectsFunc != nil {
		return m.ProjectsFunc()
	}
	return nil
}

func (m *MockContentService) UniqueTags() []domain.TagID {
	if m.UniqueTagsFunc != nil {
		return m.UniqueTagsFunc()
	}
	return []domain.TagID{}
}

func (m *MockContentService) ByTag(tag domain.TagID) service.TagEntries {
	if m.ByTagFunc != nil {
		return m.ByTagFunc(tag)
	}
	return service.TagEntries{Tag: tag, Posts: []domain.BlogEntry{}, Projects: []domain.ProjectEntry{}}
}

func (m *MockContentService) Ping(ctx context.Context) error {
	return nil
}

// MockFeedBuilder mocks FeedBuilder.
type MockFeedBuilder struct {
	BuildFunc func(posts []domain.BlogEntry) ([]byte, error)
}

func (m *MockFeedBuilder) Build(posts []domain.BlogEntry) ([]byte, error) {
	if m.BuildFunc != nil {
		return m.BuildFunc(posts)
	}
	return []byte("<rss/>"), nil
}

func (m *MockFeedBuilder) PostURL(slug domain.Slug) string {
	return "https://example.com/blog/" + slug + "/"
}

// MockProjectsService mocks service.ProjectsService.
type MockProjectsService struct {
	WithStarsFunc func(ctx context.Context) []domain.ProjectEntry
}

func (m *MockProjectsService) WithStars(ctx context.Context) []domain.ProjectEntry {
	if m.WithStarsFunc != nil {
		return m.WithStarsFunc(ctx)
	}
	return []domain.ProjectEntry{}
}

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{MaxFormSize: 64 << 10}}
}
