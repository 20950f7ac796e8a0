package launch

import "strings"

// Mechanism identifies which OS facility a Plan invokes.
type Mechanism string

const (
	// MechanismBrowser opens the URL with the default web browser.
	MechanismBrowser Mechanism = "browser"
	// MechanismScheme hands the URL to the registered notion:// scheme
	// handler, which routes it to the desktop app.
	MechanismScheme Mechanism = "scheme"
)

// Plan is a resolved launch instruction: the mechanism to invoke and the URL
// to hand it. Note carries a one-line message for the user when the plan is
// a fallback from what they asked for; it is empty otherwise.
type Plan struct {
	Mechanism Mechanism
	URL       string
	Note      string
}

// Notes carried on fallback plans, shown to the user verbatim.
const (
	NoteDesktopNotFound   = "Notion desktop app not found. Opened in web browser instead."
	NoteDesktopOpenFailed = "Could not open Notion desktop app. Opened in web browser instead."
)

// DesktopURL rewrites a web URL to the notion:// scheme so the OS routes it
// to the desktop app. Only the leading scheme is rewritten; a URL already
// using notion:// passes through unchanged.
func DesktopURL(url string) string {
	switch {
	case strings.HasPrefix(url, "https://"):
		return "notion://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		return "notion://" + strings.TrimPrefix(url, "http://")
	}
	return url
}

// WebURL is the inverse of DesktopURL: it rewrites a notion:// URL back to
// https:// for the browser. Web URLs pass through unchanged.
func WebURL(url string) string {
	if strings.HasPrefix(url, "notion://") {
		return "https://" + strings.TrimPrefix(url, "notion://")
	}
	return url
}
