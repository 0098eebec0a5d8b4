// Package misc carries build identity shared by every command.
package misc

import "runtime/debug"

// Overridden at link time by the release build.
var (
	appName = "cssel"
	version = "dev"
	gitHash = ""
)

// GetAppName returns the program name used in logs, reports and
// temporary file names.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version, falling back to module build
// info when no version was linked in.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetGitHash returns the VCS revision the binary was built from, empty
// when unknown.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return gitHash
}
