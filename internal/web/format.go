package web

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const (
	placeholderImage = "/static/placeholder.svg"
	longDateLayout   = "2 de January de 2006"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// formatDate renders a front matter date in Brazilian Portuguese.
// Dates in an unknown layout are shown as written.
func formatDate(raw string) string {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return monday.Format(t, longDateLayout, monday.LocalePtBR)
		}
	}
	return raw
}

func imageOrPlaceholder(image string) string {
	if strings.TrimSpace(image) == "" {
		return placeholderImage
	}
	return image
}

func categoryURL(category string) string {
	return "/categorias/" + url.PathEscape(category)
}

func postURL(slug string) string {
	return "/post/" + url.PathEscape(slug)
}

// ShareLink is one "share this post" target
type ShareLink struct {
	Name string
	URL  string
}

func shareLinks(pageURL, title string) []ShareLink {
	text := url.QueryEscape(title + " " + pageURL)
	escapedURL := url.QueryEscape(pageURL)

	return []ShareLink{
		{Name: "WhatsApp", URL: "https://wa.me/?text=" + text},
		{Name: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + escapedURL},
		{Name: "X", URL: "https://twitter.com/intent/tweet?url=" + escapedURL + "&text=" + url.QueryEscape(title)},
		{Name: "Telegram", URL: "https://t.me/share/url?url=" + escapedURL + "&text=" + url.QueryEscape(title)},
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate":  formatDate,
		"imageOr":     imageOrPlaceholder,
		"categoryURL": categoryURL,
		"postURL":     postURL,
	}
}
