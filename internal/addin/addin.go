// Package addin implements the add-in's command surface: the toolbar button,
// the settings form, and the palette's helper actions. Every event reduces
// to a single user-facing Message.
//
// The package carries no host or transport types; the HTTP layer adapts it
// to whatever event model the host has.
package addin

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/bradandersonjr/fusion-notion-notes/internal/launch"
	"github.com/bradandersonjr/fusion-notion-notes/internal/models"
	"github.com/bradandersonjr/fusion-notion-notes/internal/storage"
)

// Add-in identity, reported by the status endpoint and startup logs.
const (
	Name    = "Fusion Notion Notes"
	Version = "0.7.0"
)

// Fixed Notion URLs for events that do not involve the configured database.
const (
	// NewPageURL opens a blank page composer; the quick-note action uses it.
	NewPageURL = "https://www.notion.so/new"
	// HomeURL is where users go to find and copy their database URL.
	HomeURL = "https://www.notion.so"
)

// errPrefix matches the host's dialog convention for unexpected failures.
const errPrefix = "Failed:\n"

// Addin wires the preference store and launcher behind the host's event
// surface. A single mutex serializes events: the host UI model is single
// threaded, and the preference file must only be touched by one handler at
// a time.
type Addin struct {
	store    *storage.Store
	launcher *launch.Launcher
	mu       sync.Mutex
}

// New creates the add-in surface over the given store and launcher.
func New(store *storage.Store, launcher *launch.Launcher) *Addin {
	return &Addin{store: store, launcher: launcher}
}

// SettingsForm carries the raw fields submitted by the settings panel.
type SettingsForm struct {
	DatabaseURL string `json:"databaseUrl"`
	OpenMethod  string `json:"defaultMethod"`
}

// OnActivate handles the toolbar button. It loads the preference fresh,
// resolves a launch plan, and executes it. An unconfigured add-in redirects
// the user to the settings panel instead of launching anything.
func (a *Addin) OnActivate(ctx context.Context) models.Message {
	a.mu.Lock()
	defer a.mu.Unlock()

	pref := a.store.Load()

	plan, err := a.launcher.Resolve(ctx, pref)
	if err != nil {
		if errors.Is(err, launch.ErrNotConfigured) {
			return models.Message{
				Level:        models.LevelInfo,
				Text:         "No Notion database URL configured yet. Add one in the settings panel.",
				OpenSettings: true,
			}
		}
		slog.Error("resolving launch plan", "error", err)
		return models.Message{Level: models.LevelError, Text: errPrefix + err.Error()}
	}

	executed, err := a.launcher.Execute(ctx, plan)
	if err != nil {
		slog.Error("opening notion", "url", plan.URL, "error", err)
		return models.Message{Level: models.LevelError, Text: errPrefix + err.Error()}
	}

	if executed.Note != "" {
		return models.Message{Level: models.LevelWarning, Text: executed.Note}
	}
	return models.Message{Level: models.LevelInfo, Text: successText(executed.Mechanism)}
}

// OnSettingsSubmit handles the settings form. The URL must be non-empty;
// anything else about it is the OS opener's problem. Unknown open methods
// save as web.
func (a *Addin) OnSettingsSubmit(ctx context.Context, form SettingsForm) models.Message {
	a.mu.Lock()
	defer a.mu.Unlock()

	url := strings.TrimSpace(form.DatabaseURL)
	if url == "" {
		return models.Message{
			Level:        models.LevelError,
			Text:         "A Notion database URL is required.",
			OpenSettings: true,
		}
	}

	pref := models.Preference{
		DatabaseURL: url,
		OpenMethod:  models.OpenMethod(form.OpenMethod).Normalize(),
	}
	if err := a.store.Save(pref); err != nil {
		slog.Error("saving preference", "error", err)
		return models.Message{Level: models.LevelError, Text: errPrefix + err.Error()}
	}

	slog.Info("saved preference", "open_method", pref.OpenMethod)
	return models.Message{Level: models.LevelInfo, Text: "Settings saved."}
}

// OnQuickNote opens a blank Notion page in the browser, ignoring the
// configured database and method.
func (a *Addin) OnQuickNote(ctx context.Context) models.Message {
	a.mu.Lock()
	defer a.mu.Unlock()

	plan := launch.Plan{Mechanism: launch.MechanismBrowser, URL: NewPageURL}
	if _, err := a.launcher.Execute(ctx, plan); err != nil {
		slog.Error("opening quick note", "error", err)
		return models.Message{Level: models.LevelError, Text: errPrefix + err.Error()}
	}
	return models.Message{Level: models.LevelInfo, Text: "Opened a new Notion page in your web browser."}
}

// OnOpenLink opens a help link from the settings panel in the browser. An
// empty URL means the Notion home page, where the user can copy their
// database URL.
func (a *Addin) OnOpenLink(ctx context.Context, url string) models.Message {
	a.mu.Lock()
	defer a.mu.Unlock()

	url = strings.TrimSpace(url)
	if url == "" {
		url = HomeURL
	}

	plan := launch.Plan{Mechanism: launch.MechanismBrowser, URL: url}
	if _, err := a.launcher.Execute(ctx, plan); err != nil {
		slog.Error("opening link", "url", url, "error", err)
		return models.Message{Level: models.LevelError, Text: errPrefix + err.Error()}
	}
	return models.Message{Level: models.LevelInfo, Text: "Opened in your web browser."}
}

// Preference returns the stored record, for populating the settings form.
func (a *Addin) Preference() models.Preference {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Load()
}

// ConfigPath returns the location of the preference file, for display.
func (a *Addin) ConfigPath() string {
	return a.store.Path()
}

// successText describes a cleanly executed plan.
func successText(m launch.Mechanism) string {
	if m == launch.MechanismScheme {
		return "Opened Notion in the desktop app."
	}
	return "Opened Notion in your web browser."
}
