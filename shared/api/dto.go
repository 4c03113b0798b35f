package api

import "github.com/mateoroldos/personal-blog/shared/domain"

// Response DTOs written by backend handlers and read by the site

// MessageResponse is the contact endpoint envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the subscription endpoint envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TagsResponse struct {
	Tags []domain.TagID `json:"tags"`
}

type TagResponse struct {
	Tag      domain.TagID          `json:"tag"`
	Posts    []PostSummary         `json:"posts"`
	Projects []domain.ProjectEntry `json:"projects"`
}

// PostSummary is the public view of a blog entry.
type PostSummary struct {
	Slug        domain.Slug `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Tags        []string    `json:"tags"`
	Link        string      `json:"link"`
}
