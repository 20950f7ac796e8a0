package models

import "strings"

// OpenMethod selects how a Notion URL is opened: in the default web browser
// or in the Notion desktop app via its notion:// URL scheme.
type OpenMethod string

const (
	OpenMethodWeb     OpenMethod = "web"
	OpenMethodDesktop OpenMethod = "desktop"
)

// Normalize maps unknown or empty open-method values to OpenMethodWeb.
// Only an exact "desktop" selects the desktop app.
func (m OpenMethod) Normalize() OpenMethod {
	if m == OpenMethodDesktop {
		return m
	}
	return OpenMethodWeb
}

// Preference is the user's persistent configuration: which Notion database
// URL the toolbar button opens, and how. An empty DatabaseURL means nothing
// has been configured yet.
type Preference struct {
	DatabaseURL string     `json:"database_url"`
	OpenMethod  OpenMethod `json:"default_open_method"`
}

// DefaultPreference is the first-run record: no database URL, open in the
// web browser.
func DefaultPreference() Preference {
	return Preference{OpenMethod: OpenMethodWeb}
}

// Configured reports whether a database URL has been set.
func (p Preference) Configured() bool {
	return strings.TrimSpace(p.DatabaseURL) != ""
}
