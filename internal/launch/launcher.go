// Package launch decides how a Notion URL should be opened and carries the
// decision out.
//
// Resolution turns the stored preference into a Plan: the web browser, or
// the desktop app's notion:// scheme when the app is installed. Execution
// hands the plan's URL to the OS, falling back from the desktop app to the
// browser when the scheme open fails.
package launch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bradandersonjr/fusion-notion-notes/internal/models"
)

// Launcher resolves preferences into plans and executes them.
type Launcher struct {
	probe  DesktopAppProbe
	opener Opener
}

// NewLauncher creates a Launcher using the platform probe and the system
// URL opener.
func NewLauncher() *Launcher {
	return &Launcher{probe: NewProbe(), opener: systemOpener{}}
}

// NewLauncherWith creates a Launcher with explicit collaborators. Tests use
// it to substitute fakes for the probe and opener.
func NewLauncherWith(probe DesktopAppProbe, opener Opener) *Launcher {
	return &Launcher{probe: probe, opener: opener}
}

// Resolve turns a preference into a Plan.
//
// Web method always yields the browser plan with the configured URL exactly
// as stored. Desktop method probes for the app first: if it is installed the
// plan invokes the notion:// scheme, otherwise the plan falls back to the
// browser and carries an informational note. An unconfigured preference
// yields ErrNotConfigured instead of a plan.
func (l *Launcher) Resolve(ctx context.Context, pref models.Preference) (Plan, error) {
	if !pref.Configured() {
		return Plan{}, ErrNotConfigured
	}

	url := strings.TrimSpace(pref.DatabaseURL)
	if pref.OpenMethod.Normalize() != models.OpenMethodDesktop {
		return Plan{Mechanism: MechanismBrowser, URL: url}, nil
	}

	if !l.probe.Installed(ctx) {
		return Plan{Mechanism: MechanismBrowser, URL: url, Note: NoteDesktopNotFound}, nil
	}

	return Plan{Mechanism: MechanismScheme, URL: DesktopURL(url)}, nil
}

// Execute hands the plan's URL to the OS and returns the plan that actually
// ran. A failed scheme open falls back to opening the web URL in the
// browser, with the fallback note attached; a failed browser open is the
// terminal error.
func (l *Launcher) Execute(ctx context.Context, plan Plan) (Plan, error) {
	err := l.opener.OpenURL(ctx, plan.URL)
	if err == nil {
		return plan, nil
	}

	if plan.Mechanism != MechanismScheme {
		return plan, fmt.Errorf("opening %q in browser: %w", plan.URL, err)
	}

	slog.Warn("desktop app open failed, falling back to browser", "url", plan.URL, "error", err)

	fallback := Plan{
		Mechanism: MechanismBrowser,
		URL:       WebURL(plan.URL),
		Note:      NoteDesktopOpenFailed,
	}
	if ferr := l.opener.OpenURL(ctx, fallback.URL); ferr != nil {
		return fallback, fmt.Errorf("opening %q in browser after desktop app failed: %w", fallback.URL, ferr)
	}
	return fallback, nil
}
