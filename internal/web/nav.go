package web

import (
	"net/url"
	"strings"
)

const (
	menuParam   = "menu"
	searchParam = "search"
	openValue   = "open"
)

// NavState is the header's open/closed panels. It travels in the query string
// so the shell works without scripts.
type NavState struct {
	MenuOpen   bool
	SearchOpen bool
}

// ParseNavState reads the panel flags from a request query
func ParseNavState(query url.Values) NavState {
	return NavState{
		MenuOpen:   query.Get(menuParam) == openValue,
		SearchOpen: query.Get(searchParam) == openValue,
	}
}

func (n NavState) ToggleMenu() NavState {
	n.MenuOpen = !n.MenuOpen
	return n
}

func (n NavState) ToggleSearch() NavState {
	n.SearchOpen = !n.SearchOpen
	return n
}

// CloseMenu is used by every navigation link so that following a link collapses the mobile menu
func (n NavState) CloseMenu() NavState {
	n.MenuOpen = false
	return n
}

// SubmitSearch closes the search panel. The query itself is not used to filter anything.
func (n NavState) SubmitSearch(query string) NavState {
	n.SearchOpen = false
	return n
}

// Query encodes the open panels. Closed panels are omitted.
func (n NavState) Query() url.Values {
	q := url.Values{}
	if n.MenuOpen {
		q.Set(menuParam, openValue)
	}
	if n.SearchOpen {
		q.Set(searchParam, openValue)
	}
	return q
}

// URL returns path with the state attached
func (n NavState) URL(path string) string {
	if encoded := n.Query().Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}

// safeReturnPath only accepts local absolute paths, so the search redirect cannot leave the site
func safeReturnPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return "/"
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}

	return u.Path
}
