package tui

import (
	"fmt"

	"github.com/akyairhashvil/salestrack/internal/config"
)

// Set at build time with -ldflags "-X .../internal/tui.GitCommit=...".
var (
	AppVersion = config.AppVersion
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
