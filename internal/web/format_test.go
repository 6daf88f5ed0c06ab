package web

import (
	"strings"
	"testing"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		contains []string
	}{
		{name: "Date only", raw: "2024-01-15", contains: []string{"15 de janeiro de 2024"}},
		{name: "RFC3339", raw: "2023-12-03T10:00:00Z", contains: []string{"3 de dezembro de 2023"}},
		{name: "Unknown layout kept", raw: "ontem", contains: []string{"ontem"}},
		{name: "Empty", raw: "", contains: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.ToLower(formatDate(tt.raw))
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("formatDate(%q) = %q, want it to contain %q", tt.raw, got, want)
				}
			}
		})
	}
}

func TestImageOrPlaceholder(t *testing.T) {
	if got := imageOrPlaceholder(""); got != placeholderImage {
		t.Errorf("imageOrPlaceholder(\"\") = %q, want %q", got, placeholderImage)
	}
	if got := imageOrPlaceholder("/images/mouse.jpg"); got != "/images/mouse.jpg" {
		t.Errorf("imageOrPlaceholder kept %q, want /images/mouse.jpg", got)
	}
}

func TestCategoryURL(t *testing.T) {
	if got := categoryURL("Casa e Cozinha"); got != "/categorias/Casa%20e%20Cozinha" {
		t.Errorf("categoryURL = %q", got)
	}
}

func TestShareLinks(t *testing.T) {
	links := shareLinks("https://blog.example.com/post/mouse", "Mouse gamer")
	if len(links) == 0 {
		t.Fatal("shareLinks returned nothing")
	}
	for _, l := range links {
		if !strings.HasPrefix(l.URL, "https://") {
			t.Errorf("%s share URL %q is not absolute", l.Name, l.URL)
		}
		if !strings.Contains(l.URL, "blog.example.com%2Fpost%2Fmouse") {
			t.Errorf("%s share URL %q does not carry the page URL", l.Name, l.URL)
		}
	}
}
