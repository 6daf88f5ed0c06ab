package application

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const defaultImageBaseURL = "/images"

// relativeImageTransformer points relative image destinations at the site's image route
type relativeImageTransformer struct {
	baseURL string
}

func (t *relativeImageTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := string(img.Destination)
		// Site-absolute paths are already served as-is
		if isRelativeLink(dest) && !strings.HasPrefix(dest, "/") && dest != "" {
			img.Destination = []byte(t.baseURL + "/" + path.Base(dest))
		}

		return ast.WalkContinue, nil
	})
}

func isRelativeLink(dest string) bool {
	// Absolute path check
	if strings.HasPrefix(dest, "/") {
		if strings.HasPrefix(dest, "//") {
			return false
		}
		return true
	}

	if strings.HasPrefix(dest, "./") || strings.HasPrefix(dest, "../") {
		return true
	}

	if strings.Contains(dest, ":") {
		return false
	}

	return true
}

// MarkdownRenderer defines the interface for converting a post body to sanitized HTML.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
}

type MarkdownRendererImpl struct {
	renderer goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewMarkdownRenderer builds the goldmark pipeline. Relative images are rewritten under imageBaseURL.
func NewMarkdownRenderer(imageBaseURL string) MarkdownRenderer {
	imageBaseURL = strings.TrimSuffix(imageBaseURL, "/")
	if imageBaseURL == "" {
		imageBaseURL = defaultImageBaseURL
	}

	renderer := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&relativeImageTransformer{baseURL: imageBaseURL}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			html.WithUnsafe(),
		),
	)

	// Raw HTML is let through goldmark and cleaned here, so embedded markup in posts survives sanitizing
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnFullyQualifiedLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &MarkdownRendererImpl{
		renderer: renderer,
		policy:   policy,
	}
}

func (r *MarkdownRendererImpl) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := r.renderer.Convert(markdown, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}

	return r.policy.SanitizeBytes(buf.Bytes()), nil
}
