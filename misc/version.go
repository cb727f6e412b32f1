// Package misc carries program identification set at build time.
package misc

import "runtime/debug"

// overwritten by linker flags on release builds
var (
	appName = "selc"
	version = "development"
	gitHash = ""
)

// GetAppName returns the short program name used in logs, temp files and
// report names.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version.
func GetVersion() string {
	return version
}

// GetGitHash returns the source revision the program was built from.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
