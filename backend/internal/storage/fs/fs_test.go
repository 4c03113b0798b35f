package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/mateoroldos/personal-blog/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upperRenderer stands in for the markdown renderer.
type upperRenderer struct {
	err error
}

func (r upperRenderer) Render(src string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "<p>" + strings.ToUpper(strings.TrimSpace(src)) + "</p>", nil
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNew(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		root := t.TempDir()
		s, err := New(filepath.Join(root, "x", ".."), upperRenderer{})
		require.NoError(t, err)
		assert.Equal(t, root, s.rootPath)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "nope"), upperRenderer{})
		assert.Error(t, err)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "file", "x")
		_, err := New(filepath.Join(root, "file"), upperRenderer{})
		assert.Error(t, err)
	})
}

func TestLoadPosts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blog/local-first.md", `---
title: Local first software
description: Why your data should live on your device
date: 2023-04-12
tags:
  - Local First
  - CRDTs
---

Hello world
`)
	writeFile(t, root, "blog/draft-post.md", "---\r\ntitle: WIP\r\ndescription: soon\r\ndate: \"2024-01-02T10:00:00+02:00\"\r\nisDraft: true\r\n---\r\nbody\r\n")
	writeFile(t, root, "blog/notes.txt", "not a post")

	s, err := New(root, upperRenderer{})
	require.NoError(t, err)

	posts, err := s.LoadPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// sorted by file name
	draft, post := posts[0], posts[1]

	assert.Equal(t, "local-first", post.Slug)
	assert.Equal(t, "Local first software", post.Title)
	assert.Equal(t, "Why your data should live on your device", post.Description)
	assert.Equal(t, time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC), post.Date)
	assert.Equal(t, []string{"Local First", "CRDTs"}, post.Tags)
	assert.False(t, post.IsDraft)
	assert.Equal(t, "Hello world\n", post.Body)
	assert.Equal(t, "<p>HELLO WORLD</p>", post.HTML)

	assert.Equal(t, "draft-post", draft.Slug)
	assert.True(t, draft.IsDraft)
	assert.Nil(t, draft.Tags)
	assert.Equal(t, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), draft.Date)
	assert.Equal(t, "body\n", draft.Body)
}

func TestLoadPostsErrors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		renderErr error
		wantIn    string
	}{
		{name: "no front matter", content: "just text", wantIn: "missing front matter"},
		{name: "unterminated front matter", content: "---\ntitle: a\n", wantIn: "unterminated"},
		{name: "missing title", content: "---\ndescription: d\ndate: 2023-01-01\n---\nx", wantIn: "title is required"},
		{name: "missing date", content: "---\ntitle: t\ndescription: d\n---\nx", wantIn: "date is required"},
		{name: "bad date", content: "---\ntitle: t\ndescription: d\ndate: yesterday\n---\nx", wantIn: "invalid date"},
		{name: "bad yaml", content: "---\ntitle: [\n---\nx", wantIn: "front matter"},
		{name: "render failure", content: "---\ntitle: t\ndescription: d\ndate: 2023-01-01\n---\nx", renderErr: errors.New("boom"), wantIn: "boom"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "blog/broken.md", tc.content)

			s, err := New(root, upperRenderer{err: tc.renderErr})
			require.NoError(t, err)

			_, err = s.LoadPosts()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "broken.md")
			assert.Contains(t, err.Error(), tc.wantIn)
		})
	}
}

func TestLoadPostsEmpty(t *testing.T) {
	s, err := New(t.TempDir(), upperRenderer{})
	require.NoError(t, err)

	posts, err := s.LoadPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestLoadProjects(t *testing.T) {
	t.Run("parses the list", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "projects.yaml", `
- name: Floats
  user: mateoroldos
  repo: floats
  description: Proof of attendance on Flow
  tags: [Svelte, Flow]
- name: Personal Blog
  user: mateoroldos
  repo: personal-blog
  tags: [Astro, Tailwind]
`)
		s, err := New(root, upperRenderer{})
		require.NoError(t, err)

		projects, err := s.LoadProjects()
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "Floats", projects[0].Name)
		assert.Equal(t, "mateoroldos/floats", projects[0].RepoPath())
		assert.Equal(t, []string{"Svelte", "Flow"}, projects[0].Tags)
		assert.Nil(t, projects[0].Stars)
	})

	t.Run("missing file", func(t *testing.T) {
		s, err := New(t.TempDir(), upperRenderer{})
		require.NoError(t, err)

		projects, err := s.LoadProjects()
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("missing repo", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "projects.yaml", "- name: Floats\n  user: mateoroldos\n")
		s, err := New(root, upperRenderer{})
		require.NoError(t, err)

		_, err = s.LoadProjects()
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "project #1")
	})

	t.Run("unknown field", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "projects.yaml", "- name: Floats\n  user: u\n  repo: r\n  stargazers: 3\n")
		s, err := New(root, upperRenderer{})
		require.NoError(t, err)

		_, err = s.LoadProjects()
		assert.Error(t, err)
	})
}

func TestPing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "content")
	require.NoError(t, os.Mkdir(root, 0o755))

	s, err := New(root, upperRenderer{})
	require.NoError(t, err)
	assert.NoError(t, s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)

	require.NoError(t, os.RemoveAll(root))
	assert.Error(t, s.Ping(context.Background()))
}
