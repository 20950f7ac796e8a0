package launch

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// probeTimeout bounds the registry query so a hung system command cannot
// stall the click handler.
const probeTimeout = 2 * time.Second

// DesktopAppProbe reports whether the Notion desktop app has registered its
// URL-scheme handler on this machine. Probes are side-effect-free and run
// fresh on every desktop-mode launch; the answer is never cached, so
// installing the app takes effect on the next click.
type DesktopAppProbe interface {
	Installed(ctx context.Context) bool
}

// NewProbe returns the probe for the current platform. Platforms without a
// reliable check get a probe that reports not installed, so desktop mode
// falls back to the browser there.
func NewProbe() DesktopAppProbe {
	switch runtime.GOOS {
	case "windows":
		return windowsProbe{}
	case "darwin":
		return darwinProbe{}
	default:
		return staticProbe{}
	}
}

// windowsProbe queries the registry for the notion:// protocol registration.
type windowsProbe struct{}

func (windowsProbe) Installed(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "reg", "query", `HKEY_CLASSES_ROOT\notion`, "/ve")
	return cmd.Run() == nil
}

// darwinProbe looks for the Notion app bundle at the conventional install
// locations. The bundle registers the notion:// scheme with Launch Services
// on install.
type darwinProbe struct{}

func (darwinProbe) Installed(context.Context) bool {
	candidates := []string{"/Applications/Notion.app"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "Applications", "Notion.app"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

// staticProbe always answers "not installed". It serves platforms where no
// scheme-registration check exists.
type staticProbe struct{}

func (staticProbe) Installed(context.Context) bool {
	return false
}
