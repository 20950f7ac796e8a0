package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bradandersonjr/fusion-notion-notes/internal/addin"
)

// Activate handles POST /api/activate: the toolbar button click. The
// response is always 200 with a level-tagged message; the host shows every
// outcome as a dialog, so the level carries the result, not the status code.
func Activate(a *addin.Addin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, a.OnActivate(r.Context()))
	}
}

// QuickNote handles POST /api/quicknote. It opens a blank Notion page in
// the browser regardless of the stored configuration.
func QuickNote(a *addin.Addin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, a.OnQuickNote(r.Context()))
	}
}

// OpenLink handles POST /api/open. The body is optional: no body (or an
// empty url) opens the Notion home page for the user to copy their database
// URL from; otherwise the given URL opens in the browser.
func OpenLink(a *addin.Addin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		writeJSON(w, http.StatusOK, a.OnOpenLink(r.Context(), body.URL))
	}
}
