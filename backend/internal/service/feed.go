package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/mateoroldos/personal-blog/shared/domain"
)

// FeedInfo describes the channel of the RSS document.
type FeedInfo struct {
	SiteURL     string
	Title       string
	Description string
	Language    string
}

type Feed struct {
	info FeedInfo
	now  func() time.Time
}

func NewFeed(info FeedInfo) *Feed {
	info.SiteURL = strings.TrimRight(info.SiteURL, "/")
	return &Feed{info: info, now: time.Now}
}

// PostURL is the canonical address of a post; it doubles as the item guid.
func (f *Feed) PostURL(slug domain.Slug) string {
	return fmt.Sprintf("%s/blog/%s/", f.info.SiteURL, slug)
}

// Build renders an RSS 2.0 document of the non-draft posts, newest first.
func (f *Feed) Build(posts []domain.BlogEntry) ([]byte, error) {
	published := publishedNewestFirst(posts)

	updated := f.now().UTC()
	if len(published) > 0 {
		updated = published[0].Date
	}

	feed := &feeds.Feed{
		Title:       f.info.Title,
		Link:        &feeds.Link{Href: f.info.SiteURL + "/"},
		Description: f.info.Description,
		Updated:     updated,
	}
	for _, p := range published {
		link := f.PostURL(p.Slug)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Description,
			Id:          link,
			Created:     p.Date,
			Content:     p.HTML,
		})
	}

	channel := (&feeds.Rss{Feed: feed}).RssFeed()
	channel.Language = f.info.Language
	channel.Generator = "personal-blog"

	out, err := feeds.ToXML(channel)
	if err != nil {
		return nil, fmt.Errorf("failed to render rss: %w", err)
	}
	return []byte(out), nil
}
