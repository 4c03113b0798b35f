package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/mateoroldos/personal-blog/shared/domain"
	"github.com/mateoroldos/personal-blog/shared/tags"
)

type ContentService interface {
	Posts() []domain.BlogEntry
	PublishedPosts() []domain.BlogEntry
	Projects() []domain.ProjectEntry
	UniqueTags() []domain.TagID
	ByTag(tag domain.TagID) TagEntries
	Ping(ctx context.Context) error
}

type ContentStorage interface {
	LoadPosts() ([]domain.BlogEntry, error)
	LoadProjects() ([]domain.ProjectEntry, error)
	Ping(ctx context.Context) error
}

// TagEntries is everything listed under one tag.
type TagEntries struct {
	Tag      domain.TagID
	Posts    []domain.BlogEntry
	Projects []domain.ProjectEntry
}

// Content is a snapshot of the site content taken at startup.
// Accessors return copies, the snapshot itself never changes.
type Content struct {
	storage   ContentStorage
	posts     []domain.BlogEntry
	published []domain.BlogEntry
	projects  []domain.ProjectEntry
	tags      []domain.TagID
}

func NewContent(storage ContentStorage) (*Content, error) {
	posts, err := storage.LoadPosts()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	projects, err := storage.LoadProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	return &Content{
		storage:   storage,
		posts:     posts,
		published: publishedNewestFirst(posts),
		projects:  projects,
		tags:      tags.UniqueTags(posts, projects),
	}, nil
}

func (c *Content) Posts() []domain.BlogEntry {
	return slices.Clone(c.posts)
}

// PublishedPosts returns non-draft posts, newest first.
func (c *Content) PublishedPosts() []domain.BlogEntry {
	return slices.Clone(c.published)
}

func (c *Content) Projects() []domain.ProjectEntry {
	return slices.Clone(c.projects)
}

func (c *Content) UniqueTags() []domain.TagID {
	return slices.Clone(c.tags)
}

// ByTag lists published posts and all projects carrying tag.
func (c *Content) ByTag(tag domain.TagID) TagEntries {
	return TagEntries{
		Tag:      tag,
		Posts:    tags.EntriesByTag(c.published, tag),
		Projects: tags.EntriesByTag(c.projects, tag),
	}
}

func (c *Content) Ping(ctx context.Context) error {
	return c.storage.Ping(ctx)
}

func publishedNewestFirst(posts []domain.BlogEntry) []domain.BlogEntry {
	published := make([]domain.BlogEntry, 0, len(posts))
	for _, p := range posts {
		if !p.Draft() {
			published = append(published, p)
		}
	}
	slices.SortStableFunc(published, func(a, b domain.BlogEntry) int {
		return b.Date.Compare(a.Date)
	})
	return published
}
