// Package fs loads site content (markdown posts and the project list) from a directory tree.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/mateoroldos/personal-blog/shared/domain"
	"github.com/mateoroldos/personal-blog/shared/validation"
)

const (
	blogDir      = "blog"
	projectsFile = "projects.yaml"
	postExt      = ".md"
)

var (
	ErrNoFrontMatter = errors.New("missing front matter")
	dateLayouts      = []string{"2006-01-02", time.RFC3339}
	frontMatterDelim = []byte("---")
)

type Renderer interface {
	Render(src string) (string, error)
}

type Storage struct {
	rootPath string
	renderer Renderer
}

type frontMatter struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Date        string   `yaml:"date" validate:"required"`
	Tags        []string `yaml:"tags"`
	IsDraft     bool     `yaml:"isDraft"`
}

func New(rootPath string, renderer Renderer) (*Storage, error) {
	p := filepath.Clean(rootPath)

	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("content root %s: %w", p, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", p)
	}

	return &Storage{rootPath: p, renderer: renderer}, nil
}

// LoadPosts parses every blog/*.md file, drafts included. The slug is the file name.
func (s *Storage) LoadPosts() ([]domain.BlogEntry, error) {
	paths, err := filepath.Glob(filepath.Join(s.rootPath, blogDir, "*"+postExt))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	sort.Strings(paths)

	posts := make([]domain.BlogEntry, 0, len(paths))
	for _, path := range paths {
		post, err := s.loadPost(path)
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", filepath.Base(path), err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Storage) loadPost(path string) (domain.BlogEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.BlogEntry{}, err
	}

	header, body, err := splitFrontMatter(raw)
	if err != nil {
		return domain.BlogEntry{}, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return domain.BlogEntry{}, fmt.Errorf("failed to parse front matter: %w", err)
	}
	if err := validation.Struct(fm); err != nil {
		return domain.BlogEntry{}, err
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		return domain.BlogEntry{}, err
	}

	html, err := s.renderer.Render(string(body))
	if err != nil {
		return domain.BlogEntry{}, fmt.Errorf("failed to render markdown: %w", err)
	}

	return domain.BlogEntry{
		Slug:        strings.TrimSuffix(filepath.Base(path), postExt),
		Title:       fm.Title,
		Description: fm.Description,
		Date:        date,
		Tags:        fm.Tags,
		IsDraft:     fm.IsDraft,
		Body:        string(body),
		HTML:        html,
	}, nil
}

// LoadProjects reads projects.yaml. A missing file means no projects.
func (s *Storage) LoadProjects() ([]domain.ProjectEntry, error) {
	raw, err := os.ReadFile(filepath.Join(s.rootPath, projectsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.ProjectEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", projectsFile, err)
	}

	var projects []domain.ProjectEntry
	if err := yaml.UnmarshalStrict(raw, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", projectsFile, err)
	}
	for i, p := range projects {
		if err := validation.Struct(p); err != nil {
			return nil, fmt.Errorf("%s: project #%d: %w", projectsFile, i+1, err)
		}
	}
	if projects == nil {
		projects = []domain.ProjectEntry{}
	}
	return projects, nil
}

// Ping reports whether the content root is still readable.
func (s *Storage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(s.rootPath)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Readdirnames(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// splitFrontMatter separates the yaml header delimited by "---" lines from the body.
func splitFrontMatter(raw []byte) (header, body []byte, err error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	first, rest, ok := bytes.Cut(raw, []byte("\n"))
	if !ok || !bytes.Equal(bytes.TrimSpace(first), frontMatterDelim) {
		return nil, nil, ErrNoFrontMatter
	}

	for offset := 0; offset <= len(rest); {
		line, next, found := bytes.Cut(rest[offset:], []byte("\n"))
		if bytes.Equal(bytes.TrimSpace(line), frontMatterDelim) {
			header = rest[:offset]
			if found {
				body = next
			}
			return header, bytes.TrimLeft(body, "\n"), nil
		}
		if !found {
			break
		}
		offset += len(line) + 1
	}
	return nil, nil, fmt.Errorf("%w: unterminated", ErrNoFrontMatter)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", raw)
}
