package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/dfryer1193/blogrecomenda/blog/domain"
	"github.com/rs/zerolog/log"
)

var _ domain.PostRepository = (*CachedPostRepository)(nil)

// CachedPostRepository loads posts from the wrapped repository once and serves that snapshot
// until Reload is called.
type CachedPostRepository struct {
	source domain.PostRepository

	mu     sync.RWMutex
	posts  []*domain.Post
	loaded bool
}

// NewCachedPostRepository wraps source with a load-once snapshot
func NewCachedPostRepository(source domain.PostRepository) *CachedPostRepository {
	return &CachedPostRepository{
		source: source,
	}
}

// ListPosts returns the cached snapshot, loading it on first use.
// A failed load is not cached, so the next call tries again.
func (r *CachedPostRepository) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	r.mu.RLock()
	if r.loaded {
		posts := r.posts
		r.mu.RUnlock()
		return clonePosts(posts), nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		if err := r.loadLocked(ctx); err != nil {
			return nil, err
		}
	}

	return clonePosts(r.posts), nil
}

// Reload discards the snapshot and reads the source again.
// On failure the previous snapshot is kept.
func (r *CachedPostRepository) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadLocked(ctx)
}

func (r *CachedPostRepository) loadLocked(ctx context.Context) error {
	posts, err := r.source.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load posts into cache: %w", err)
	}

	r.posts = posts
	r.loaded = true
	log.Info().Int("posts", len(posts)).Msg("Post cache loaded")

	return nil
}

// clonePosts copies the slice so callers can reorder it without touching the snapshot
func clonePosts(posts []*domain.Post) []*domain.Post {
	out := make([]*domain.Post, len(posts))
	copy(out, posts)
	return out
}
