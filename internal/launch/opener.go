package launch

import (
	"context"

	"github.com/pkg/browser"
)

// Opener hands a URL to the OS. One implementation covers both plan
// mechanisms: http(s) URLs go to the default browser, and notion:// URLs go
// to whatever application the scheme is registered with.
type Opener interface {
	OpenURL(ctx context.Context, url string) error
}

// systemOpener delegates to the per-OS open command (open, xdg-open,
// rundll32) via the browser package.
type systemOpener struct{}

func (systemOpener) OpenURL(_ context.Context, url string) error {
	return browser.OpenURL(url)
}
