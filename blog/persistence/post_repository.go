package persistence

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/adrg/frontmatter"
	"github.com/dfryer1193/blogrecomenda/blog/domain"
	"github.com/rs/zerolog/log"
)

var _ domain.PostRepository = (*FilePostRepository)(nil)

const defaultPattern = "*.md"

// FilePostRepository implements domain.PostRepository over a directory holding one markdown file per post
type FilePostRepository struct {
	fsys    fs.FS
	pattern string
}

// NewFilePostRepository creates a FilePostRepository reading the top level of fsys.
// Only file names matching pattern are considered; an empty pattern means "*.md".
func NewFilePostRepository(fsys fs.FS, pattern string) *FilePostRepository {
	if pattern == "" {
		pattern = defaultPattern
	}

	return &FilePostRepository{
		fsys:    fsys,
		pattern: pattern,
	}
}

// NewDirPostRepository creates a FilePostRepository rooted at dir on the local filesystem
func NewDirPostRepository(dir string, pattern string) *FilePostRepository {
	return NewFilePostRepository(os.DirFS(dir), pattern)
}

// ListPosts reads and parses every matching file.
// A file that cannot be read or parsed is logged and skipped so the rest of the collection survives.
func (r *FilePostRepository) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	posts := make([]*domain.Post, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		matched, err := path.Match(r.pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid content pattern %q: %w", r.pattern, err)
		}
		if !matched {
			continue
		}

		post, err := r.loadPost(name)
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("Skipping unreadable post")
			continue
		}

		posts = append(posts, post)
	}

	return posts, nil
}

func (r *FilePostRepository) loadPost(name string) (*domain.Post, error) {
	source, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read post file: %w", err)
	}

	return ParsePost(name, source)
}

// ParsePost splits a content file into its front matter and markdown body.
// A file with no front matter block yields a post with empty metadata.
func ParsePost(name string, source []byte) (*domain.Post, error) {
	var meta domain.FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMalformedPost, name, err)
	}

	return &domain.Post{
		FrontMatter: meta,
		Content:     string(body),
		SourceFile:  name,
	}, nil
}
