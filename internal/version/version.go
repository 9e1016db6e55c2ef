// Package version carries build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"

	"github.com/smazurov/halshim/internal/lights"
)

var (
	// Version is the application version, set via ldflags during build.
	Version = "dev"
	// GitCommit is the git commit hash, set via ldflags during build.
	GitCommit = "unknown"
	// BuildDate is the build timestamp, set via ldflags during build.
	BuildDate = "unknown"
)

// Info contains version and build metadata.
type Info struct {
	Version       string `json:"version"`
	GitCommit     string `json:"git_commit"`
	BuildDate     string `json:"build_date"`
	GoVersion     string `json:"go_version"`
	Platform      string `json:"platform"`
	ModuleVersion string `json:"module_version" doc:"Lights module descriptor version"`
}

// Get returns version and build information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		Platform:      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		ModuleVersion: fmt.Sprintf("%d.%d", lights.ModuleInfo.VersionMajor, lights.ModuleInfo.VersionMinor),
	}
}

// String returns the application version string.
func String() string {
	return Version
}
