package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mateoroldos/personal-blog/shared/api"
	"github.com/mateoroldos/personal-blog/shared/domain"
	apperrors "github.com/mateoroldos/personal-blog/shared/errors"
	"github.com/mateoroldos/personal-blog/shared/tags"
	"github.com/mateoroldos/personal-blog/shared/utils"
)

const postDateLayout = "2006-01-02"

// RSS serves the feed of published posts.
func (h *Handler) RSS(w http.ResponseWriter, r *http.Request) {
	body, err := h.feed.Build(h.content.PublishedPosts())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=900")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.TagsResponse{Tags: h.content.UniqueTags()})
}

// GetTag accepts a tag identifier or a raw tag name; both resolve to the same slug.
func (h *Handler) GetTag(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "tag")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	tag := tags.Slugify(raw)
	if tag == "" {
		utils.WriteErrorAndStatusCode(w, &apperrors.ErrorWithStatusCode{Message: "tag is required", StatusCode: http.StatusBadRequest})
		return
	}

	entries := h.content.ByTag(tag)

	posts := make([]api.PostSummary, 0, len(entries.Posts))
	for _, p := range entries.Posts {
		posts = append(posts, h.postSummary(p))
	}
	utils.WriteJSON(w, http.StatusOK, api.TagResponse{
		Tag:      entries.Tag,
		Posts:    posts,
		Projects: entries.Projects,
	})
}

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.projects.WithStars(r.Context()))
}

func (h *Handler) postSummary(p domain.BlogEntry) api.PostSummary {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.PostSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date.UTC().Format(postDateLayout),
		Tags:        tags,
		Link:        h.feed.PostURL(p.Slug),
	}
}

