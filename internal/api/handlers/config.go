package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bradandersonjr/fusion-notion-notes/internal/addin"
	"github.com/bradandersonjr/fusion-notion-notes/internal/models"
)

// GetConfig handles GET /api/config. It returns the stored preference using
// the palette's field names.
func GetConfig(a *addin.Addin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, configResponse(a.Preference()))
	}
}

// UpdateConfig handles PUT /api/config. The body carries the settings form;
// a rejected form comes back as 400 with the validation message, and a
// saved one is echoed back alongside the confirmation.
func UpdateConfig(a *addin.Addin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form addin.SettingsForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		msg := a.OnSettingsSubmit(r.Context(), form)
		if msg.Level == models.LevelError {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": msg})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": msg,
			"config":  configResponse(a.Preference()),
		})
	}
}

// configResponse maps a preference onto the palette wire fields.
func configResponse(pref models.Preference) map[string]string {
	return map[string]string{
		"databaseUrl":   pref.DatabaseURL,
		"defaultMethod": string(pref.OpenMethod),
	}
}
