// Package tags derives canonical tag identifiers from free-text content tags.
package tags

import (
	"slices"
	"strings"
	"unicode"

	"github.com/mateoroldos/personal-blog/shared/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '-'

// Slugify lowercases raw, folds diacritics and collapses every run of
// non-alphanumeric characters into a single '-'. Leading and trailing
// separators are dropped, so "  Tailwind CSS! " becomes "tailwind-css".
func Slugify(raw string) domain.TagID {
	folded := foldMarks(strings.ToLower(raw))

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteRune(separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize slugifies raw tags, drops empty results and duplicates and
// returns them in locale-aware order. Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw []string) []domain.TagID {
	seen := make(map[domain.TagID]struct{}, len(raw))
	ids := make([]domain.TagID, 0, len(raw))
	for _, tag := range raw {
		id := Slugify(tag)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	Sort(ids)
	return ids
}

// Sort orders ids in place with an English collator, falling back to byte
// order for strings the collator considers equal.
func Sort(ids []domain.TagID) {
	// collators keep scratch buffers and are not safe for concurrent use
	c := collate.New(language.English)
	slices.SortFunc(ids, func(a, b domain.TagID) int {
		if n := c.CompareString(a, b); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
}

// UniqueTags returns the sorted set of tag identifiers used by published
// posts and by every project. Draft posts do not contribute.
func UniqueTags(posts []domain.BlogEntry, projects []domain.ProjectEntry) []domain.TagID {
	var raw []string
	for _, post := range posts {
		if post.Draft() {
			continue
		}
		raw = append(raw, post.TagList()...)
	}
	for _, project := range projects {
		raw = append(raw, project.TagList()...)
	}
	return Normalize(raw)
}

// EntriesByTag keeps the entries that carry tag once their own tags are
// slugified. Input order is preserved and no draft filtering happens here.
func EntriesByTag[E domain.Entry](entries []E, tag domain.TagID) []E {
	matched := make([]E, 0)
	for _, entry := range entries {
		if HasTag(entry, tag) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// HasTag reports whether any of entry's tags normalizes to tag.
func HasTag(entry domain.Entry, tag domain.TagID) bool {
	for _, raw := range entry.TagList() {
		if Slugify(raw) == tag {
			return true
		}
	}
	return false
}
