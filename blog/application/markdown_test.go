package application

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewMarkdownRenderer(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			name:     "Default base URL",
			baseURL:  "",
			expected: "/images",
		},
		{
			name:     "Trailing slash trimmed",
			baseURL:  "https://cdn.example.com/img/",
			expected: "https://cdn.example.com/img",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := NewMarkdownRenderer(tt.baseURL)

			impl, ok := renderer.(*MarkdownRendererImpl)
			if !ok {
				t.Fatal("NewMarkdownRenderer did not return *MarkdownRendererImpl")
			}
			if impl.renderer == nil {
				t.Error("renderer is nil")
			}
			if impl.policy == nil {
				t.Error("policy is nil")
			}

			html, err := renderer.Render([]byte("![x](photo.jpg)"))
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			want := `src="` + tt.expected + `/photo.jpg"`
			if !strings.Contains(string(html), want) {
				t.Errorf("HTML %q does not contain %q", html, want)
			}
		})
	}
}

func TestMarkdownRendererImpl_Render(t *testing.T) {
	renderer := NewMarkdownRenderer("/images")

	tests := []struct {
		name      string
		markdown  string
		contains  []string
		notInHTML []string
	}{
		{
			name:     "Headings get ids",
			markdown: "# Hello World\nThis is a test paragraph.",
			contains: []string{`<h1 id="hello-world">Hello World</h1>`, "This is a test paragraph."},
		},
		{
			name:     "Emphasis",
			markdown: "Some **bold** and *italic* text",
			contains: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:     "Tables",
			markdown: "| Col1 | Col2 |\n|------|------|\n| A    | B    |",
			contains: []string{"<table>", "<td>A</td>"},
		},
		{
			name:      "Script tags removed",
			markdown:  "Hello\n\n<script>alert('x')</script>",
			contains:  []string{"Hello"},
			notInHTML: []string{"<script", "alert("},
		},
		{
			name:      "Event handlers removed",
			markdown:  `<img src="https://example.com/a.jpg" onerror="steal()">`,
			notInHTML: []string{"onerror", "steal()"},
		},
		{
			name:      "Javascript links removed",
			markdown:  "[click](javascript:alert(1))",
			notInHTML: []string{"javascript:"},
		},
		{
			name:     "External links open in a new tab without follow",
			markdown: "[Oferta](https://example.com/oferta)",
			contains: []string{`href="https://example.com/oferta"`, "nofollow", `target="_blank"`},
		},
		{
			name:      "Local links left alone",
			markdown:  "[Categorias](/categorias)",
			contains:  []string{`href="/categorias"`},
			notInHTML: []string{"_blank"},
		},
		{
			name:     "Empty body",
			markdown: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := renderer.Render([]byte(tt.markdown))
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			html := string(result)
			for _, want := range tt.contains {
				if !strings.Contains(html, want) {
					t.Errorf("HTML does not contain %q\nHTML: %s", want, html)
				}
			}
			for _, unwanted := range tt.notInHTML {
				if strings.Contains(html, unwanted) {
					t.Errorf("HTML should not contain %q\nHTML: %s", unwanted, html)
				}
			}
		})
	}
}

func TestMarkdownRendererImpl_Render_Deterministic(t *testing.T) {
	renderer := NewMarkdownRenderer("")
	markdown := []byte("# Title\n\nParagraph with [link](https://example.com) and ![img](a.png)\n\n- one\n- two")

	first, err := renderer.Render(markdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := renderer.Render(markdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("Render is not deterministic:\n%s\n%s", first, second)
	}
}

func TestIsRelativeLink(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{
			name:     "Absolute HTTP URL",
			url:      "http://example.com/page",
			expected: false,
		},
		{
			name:     "Absolute HTTPS URL",
			url:      "https://example.com/page",
			expected: false,
		},
		{
			name:     "Protocol-relative URL",
			url:      "//example.com/page",
			expected: false,
		},
		{
			name:     "Mailto link",
			url:      "mailto:user@example.com",
			expected: false,
		},
		{
			name:     "Data URI",
			url:      "data:image/png;base64,iVBOR...",
			expected: false,
		},
		{
			name:     "Absolute path",
			url:      "/about/contact",
			expected: true,
		},
		{
			name:     "Relative path with ./",
			url:      "./images/photo.jpg",
			expected: true,
		},
		{
			name:     "Relative path with ../",
			url:      "../images/photo.jpg",
			expected: true,
		},
		{
			name:     "Simple filename",
			url:      "image.png",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isRelativeLink(tt.url)
			if result != tt.expected {
				t.Errorf("isRelativeLink(%q) = %v, want %v", tt.url, result, tt.expected)
			}
		})
	}
}

func TestRelativeImageTransformer(t *testing.T) {
	renderer := NewMarkdownRenderer("/images")

	tests := []struct {
		name     string
		markdown string
		expected string
	}{
		{
			name:     "Bare filename",
			markdown: "![Alt](photo.jpg)",
			expected: `src="/images/photo.jpg"`,
		},
		{
			name:     "Nested relative path",
			markdown: "![Alt](../images/products/mouse.png)",
			expected: `src="/images/mouse.png"`,
		},
		{
			name:     "Site-absolute path unchanged",
			markdown: "![Alt](/static/placeholder.svg)",
			expected: `src="/static/placeholder.svg"`,
		},
		{
			name:     "Absolute image unchanged",
			markdown: "![Alt](https://cdn.example.com/image.jpg)",
			expected: `src="https://cdn.example.com/image.jpg"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := renderer.Render([]byte(tt.markdown))
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.Contains(string(result), tt.expected) {
				t.Errorf("HTML %q does not contain %q", result, tt.expected)
			}
		})
	}
}
