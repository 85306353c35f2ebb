// Package version reports build information set at link time
package version

import "runtime/debug"

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// set with -ldflags "-X 'tallybook/internal/core/version.version=v0.1.0'
// -X 'tallybook/internal/core/version.commit=abcd' -X 'tallybook/internal/core/version.date=2026-01-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Info returns the build information for the tallybook binaries
// when commit was not injected the vcs revision from the build info is used
func Info() BuildInfo {
	bi := BuildInfo{
		Service: "tallybook",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" && s.Value != "" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "unknown" && s.Value != "" {
				bi.Date = s.Value
			}
		}
	}
	return bi
}

// String renders the one line form the CLI prints
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}
