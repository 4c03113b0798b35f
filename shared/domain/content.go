package domain

import (
	"time"
)

// BlogEntry is a parsed blog post.
type BlogEntry struct {
	Slug        Slug      `json:"slug" yaml:"-"`
	Title       string    `json:"title" yaml:"title" validate:"required"`
	Description string    `json:"description" yaml:"description" validate:"required"`
	Date        time.Time `json:"date" yaml:"-"`
	Tags        []string  `json:"tags" yaml:"tags"`
	IsDraft     bool      `json:"isDraft" yaml:"isDraft"`
	Body        string    `json:"-" yaml:"-"` // markdown source
	HTML        string    `json:"-" yaml:"-"` // rendered and sanitized body
}

func (b BlogEntry) TagList() []string {
	return b.Tags
}

func (b BlogEntry) Draft() bool {
	return b.IsDraft
}

// ProjectEntry is a showcased repository.
type ProjectEntry struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	User        string   `json:"user" yaml:"user" validate:"required"`
	Repo        string   `json:"repo" yaml:"repo" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Stars       *int     `json:"stars,omitempty" yaml:"stars,omitempty"`
}

func (p ProjectEntry) TagList() []string {
	return p.Tags
}

// RepoPath returns the "user/repo" GitHub path of the project.
func (p ProjectEntry) RepoPath() string {
	return p.User + "/" + p.Repo
}
