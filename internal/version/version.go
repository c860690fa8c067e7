// Package version reports which build of calm is running.
package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

const devel = "devel"

// version is stamped by release builds:
//
//	go build -ldflags "-X github.com/garrettladley/calm/internal/version.version=v1.2.0"
var version string

var get = sync.OnceValue(func() string {
	return resolve(version, debug.ReadBuildInfo)
})

// Get returns the stamped version, the module version for go install builds,
// or "devel".
func Get() string { return get() }

func resolve(stamped string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if stamped != "" {
		return stamped
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return devel
}

// IsDevelopment reports whether v came from a local checkout rather than a
// tagged release. Pseudo-versions and modified trees count as local.
func IsDevelopment(v string) bool {
	switch v {
	case "", devel, "unknown":
		return true
	}
	return strings.Contains(v, "dirty") || strings.Contains(v, "-0.")
}

// Display is the footer form of v: "v1.2.0" for releases, "devel" otherwise.
func Display(v string) string {
	if IsDevelopment(v) {
		return devel
	}
	return "v" + strings.TrimPrefix(v, "v")
}
