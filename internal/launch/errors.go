package launch

import "errors"

// ErrNotConfigured is returned by Resolve when no database URL has been
// saved yet. It is a signal to open the settings surface, not a failure.
var ErrNotConfigured = errors.New("no Notion database URL configured")
