package application

import (
	"context"
	"slices"
	"strings"

	"github.com/dfryer1193/blogrecomenda/blog/domain"
	"github.com/rs/zerolog/log"
)

// PostStore answers the read-only post queries used by the site.
// Storage failures never reach the caller: they are logged and turned into empty or absent results.
type PostStore struct {
	repo domain.PostRepository
}

func NewPostStore(repo domain.PostRepository) *PostStore {
	return &PostStore{
		repo: repo,
	}
}

// GetAllPosts returns every post, newest first by date.
// Posts sharing a date keep their storage order.
func (s *PostStore) GetAllPosts(ctx context.Context) []*domain.Post {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		return []*domain.Post{}
	}

	sortByDateDesc(posts)
	return posts
}

// GetPostBySlug returns the post with the given slug, or false when there is none
func (s *PostStore) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, bool) {
	if slug == "" {
		return nil, false
	}

	var found *domain.Post
	for _, p := range s.GetAllPosts(ctx) {
		if p.FrontMatter.Slug != slug {
			continue
		}
		if found != nil {
			log.Warn().
				Str("slug", slug).
				Str("file", p.SourceFile).
				Str("kept", found.SourceFile).
				Msg("Duplicate slug ignored")
			continue
		}
		found = p
	}

	return found, found != nil
}

// GetAllCategories returns the distinct categories in the order they first appear
func (s *PostStore) GetAllCategories(ctx context.Context) []string {
	posts := s.GetAllPosts(ctx)

	seen := make(map[string]struct{}, len(posts))
	categories := make([]string, 0)
	for _, p := range posts {
		c := p.FrontMatter.Category
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}

	return categories
}

// GetPostsByCategory returns the posts whose category equals category exactly
func (s *PostStore) GetPostsByCategory(ctx context.Context, category string) []*domain.Post {
	return filterPosts(s.GetAllPosts(ctx), func(p *domain.Post) bool {
		return p.FrontMatter.Category == category
	})
}

// GetLatestPosts returns at most count posts from the front of the date-sorted list
func (s *PostStore) GetLatestPosts(ctx context.Context, count int) []*domain.Post {
	if count <= 0 {
		return []*domain.Post{}
	}

	posts := s.GetAllPosts(ctx)
	if len(posts) > count {
		posts = posts[:count]
	}

	return posts
}

func sortByDateDesc(posts []*domain.Post) {
	slices.SortStableFunc(posts, func(a, b *domain.Post) int {
		return strings.Compare(b.FrontMatter.Date, a.FrontMatter.Date)
	})
}

func filterPosts(posts []*domain.Post, keep func(*domain.Post) bool) []*domain.Post {
	out := make([]*domain.Post, 0, len(posts))
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
