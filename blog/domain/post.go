package domain

import (
	"context"
	"errors"
)

var (
	// ErrPostNotFound is returned when no post matches the requested slug
	ErrPostNotFound = errors.New("post not found")
	// ErrMalformedPost is returned when a content file's front matter cannot be decoded
	ErrMalformedPost = errors.New("malformed post")
)

// FrontMatter is the metadata block at the top of a post's content file.
// Missing keys are left at their zero value; nothing here is validated at load time.
type FrontMatter struct {
	Title         string   `yaml:"title" toml:"title"`
	Slug          string   `yaml:"slug" toml:"slug"`
	Description   string   `yaml:"description" toml:"description"`
	Price         string   `yaml:"price" toml:"price"`
	AffiliateLink string   `yaml:"affiliateLink" toml:"affiliateLink"`
	Tags          []string `yaml:"tags" toml:"tags"`
	Category      string   `yaml:"category" toml:"category"`
	Image         string   `yaml:"image" toml:"image"`
	// Date is kept as written. It is only used for ordering.
	Date string `yaml:"date" toml:"date"`
}

// Post represents a single product recommendation.
// A post is read from one markdown file; Content is the markdown body after the front matter.
type Post struct {
	FrontMatter FrontMatter
	Content     string

	// SourceFile is the name of the file the post was read from
	SourceFile string
}

// PostRepository is read-only access to the stored posts.
type PostRepository interface {
	// ListPosts returns every post that could be parsed, in storage order.
	// Individual unreadable or malformed files are skipped.
	ListPosts(ctx context.Context) ([]*Post, error)
}
