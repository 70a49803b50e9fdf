// Package misc exposes build information about the running binary.
package misc

import "runtime/debug"

const appName = "cssb"

// GetAppName returns the short program name used for logging and temp files.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version baked into the binary, or
// "development" for local builds.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

// GetGitHash returns the VCS revision recorded in build info, if any.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
