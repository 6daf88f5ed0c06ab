package application

import (
	"context"
	"sync"

	"github.com/dfryer1193/blogrecomenda/blog/domain"
	"github.com/rs/zerolog/log"
)

// maxRelatedPosts caps the related list shown under a post
const maxRelatedPosts = 2

// DetailState is the state of a post detail page
type DetailState int

const (
	DetailLoading DetailState = iota
	DetailFound
	DetailNotFound
)

func (s DetailState) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailFound:
		return "found"
	case DetailNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// PostDetail is everything the post page needs.
// Post, HTML and Related are only set when State is DetailFound.
type PostDetail struct {
	State   DetailState
	Slug    string
	Post    *domain.Post
	HTML    []byte
	Related []*domain.Post
}

// DetailTicket identifies one Begin call on a PostDetailView
type DetailTicket uint64

// PostDetailView holds the current page state for one viewer.
// Each Begin supersedes earlier ones; results resolved with an older ticket are dropped.
type PostDetailView struct {
	mu      sync.Mutex
	ticket  DetailTicket
	current PostDetail
}

func NewPostDetailView() *PostDetailView {
	return &PostDetailView{}
}

// Begin moves the view to loading for slug and returns the ticket its result must carry
func (v *PostDetailView) Begin(slug string) DetailTicket {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.ticket++
	v.current = PostDetail{State: DetailLoading, Slug: slug}

	return v.ticket
}

// Resolve applies detail if ticket is still the latest one. It reports whether detail was applied.
func (v *PostDetailView) Resolve(ticket DetailTicket, detail PostDetail) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if ticket != v.ticket {
		log.Debug().
			Str("slug", detail.Slug).
			Str("current", v.current.Slug).
			Msg("Discarding stale post detail")
		return false
	}

	v.current = detail
	return true
}

// Current returns a copy of the view's state
func (v *PostDetailView) Current() PostDetail {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.current
}

// PostDetailService loads the data behind a post page
type PostDetailService struct {
	store    *PostStore
	markdown MarkdownRenderer
}

func NewPostDetailService(store *PostStore, markdown MarkdownRenderer) *PostDetailService {
	return &PostDetailService{
		store:    store,
		markdown: markdown,
	}
}

// Load looks up slug, renders its body and collects related posts.
// A missing post and a render failure both end in DetailNotFound.
func (s *PostDetailService) Load(ctx context.Context, slug string) PostDetail {
	notFound := PostDetail{State: DetailNotFound, Slug: slug}

	post, ok := s.store.GetPostBySlug(ctx, slug)
	if !ok {
		return notFound
	}

	html, err := s.markdown.Render([]byte(post.Content))
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Str("file", post.SourceFile).Msg("Failed to render post")
		return notFound
	}

	return PostDetail{
		State:   DetailFound,
		Slug:    slug,
		Post:    post,
		HTML:    html,
		Related: s.related(ctx, post),
	}
}

// Open runs a full load for slug through view and returns the view's resulting state
func (s *PostDetailService) Open(ctx context.Context, view *PostDetailView, slug string) PostDetail {
	ticket := view.Begin(slug)
	view.Resolve(ticket, s.Load(ctx, slug))
	return view.Current()
}

// related never fails; the store already degrades errors to an empty list
func (s *PostDetailService) related(ctx context.Context, post *domain.Post) []*domain.Post {
	related := make([]*domain.Post, 0, maxRelatedPosts)
	for _, p := range s.store.GetAllPosts(ctx) {
		if len(related) == maxRelatedPosts {
			break
		}
		if p.FrontMatter.Category != post.FrontMatter.Category || p.FrontMatter.Slug == post.FrontMatter.Slug {
			continue
		}
		related = append(related, p)
	}

	return related
}
