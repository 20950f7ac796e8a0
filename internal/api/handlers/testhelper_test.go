package handlers

import (
	"context"
	"testing"

	"github.com/bradandersonjr/fusion-notion-notes/internal/addin"
	"github.com/bradandersonjr/fusion-notion-notes/internal/launch"
	"github.com/bradandersonjr/fusion-notion-notes/internal/storage"
)

// fakeProbe reports a fixed desktop-app install state.
type fakeProbe struct {
	installed bool
}

func (p fakeProbe) Installed(context.Context) bool {
	return p.installed
}

// fakeOpener records every URL handed to it and fails the URLs in failing.
type fakeOpener struct {
	opened  []string
	failing map[string]error
}

func (o *fakeOpener) OpenURL(_ context.Context, url string) error {
	o.opened = append(o.opened, url)
	return o.failing[url]
}

// newTestAddin builds an Addin over a file store in a temp directory and a
// launcher with the given fake probe and opener.
func newTestAddin(t *testing.T, installed bool, opener *fakeOpener) *addin.Addin {
	t.Helper()
	store := storage.NewStore(t.TempDir())
	launcher := launch.NewLauncherWith(fakeProbe{installed: installed}, opener)
	return addin.New(store, launcher)
}
