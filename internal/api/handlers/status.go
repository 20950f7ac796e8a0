package handlers

import (
	"net/http"

	"github.com/bradandersonjr/fusion-notion-notes/internal/addin"
)

// Status handles GET /api/status. It identifies the bridge and reports where
// the preference file lives so the settings panel can point users at it.
func Status(a *addin.Addin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"app":         addin.Name,
			"version":     addin.Version,
			"config_path": a.ConfigPath(),
		})
	}
}
