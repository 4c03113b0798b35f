package domain

type (
	Email   = string
	MsgText = string
	Slug    = string

	// TagID is the normalized, slug-form identifier of a tag
	TagID = string
)

// Entry is any content record carrying free-text tags.
type Entry interface {
	TagList() []string
}
