// Package platform holds the OS-dependent conventions used when talking to
// tt and to the editor: the line terminator tt prints and the path separator
// used to build target file names.
package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Platform describes line and path conventions for one operating system.
type Platform struct {
	Name       string
	LineEnding string
	Separator  string
}

// For returns the conventions for the given GOOS value.
// An empty name resolves to the running OS.
func For(goos string) Platform {
	goos = strings.ToLower(strings.TrimSpace(goos))
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos == "windows" {
		return Platform{Name: goos, LineEnding: "\r\n", Separator: `\`}
	}
	return Platform{Name: goos, LineEnding: "\n", Separator: "/"}
}

// Current returns the conventions of the running OS.
func Current() Platform {
	return For(runtime.GOOS)
}

// Join joins a directory and a file name with the platform separator.
// Unlike filepath.Join the result is not cleaned, so the host editor's
// directory string is kept as given.
func (p Platform) Join(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, p.Separator) {
		return dir + name
	}
	return dir + p.Separator + name
}

// SplitLines splits tool output on the platform line terminator, "\n" when
// none is set. A trailing terminator yields a final empty element.
func (p Platform) SplitLines(s string) []string {
	sep := p.LineEnding
	if sep == "" {
		sep = "\n"
	}
	return strings.Split(s, sep)
}

// DefaultPluginDir returns where the editor keeps the template_touch package
// for the given OS. home is the user's home directory and appData the value
// of %APPDATA% (only used on Windows).
func DefaultPluginDir(goos, home, appData string) string {
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "windows":
		base := appData
		if base == "" {
			base = home + `\AppData\Roaming`
		}
		return base + `\Sublime Text\Packages\template_touch`
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Sublime Text", "Packages", "template_touch")
	default:
		return filepath.Join(home, ".config", "sublime-text", "Packages", "template_touch")
	}
}
