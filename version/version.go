package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// These variables are set during build time with -ldflags "-X ..."
var (
	// Version is the current version
	Version = "0.0.0"

	// Branch is current branch name the code is built off.
	Branch = "unknown"

	// Revision is the short commit hash of source tree
	Revision = "unknown"

	// BuiltAt is the build time
	BuiltAt = "unknown"
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	Branch    string `json:"branch"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"builtAt"`
	GoVersion string `json:"goVersion"`
}

var (
	info     Info
	infoOnce sync.Once
)

// GetVersionInfo returns version information. Values left at their defaults
// are filled from the VCS stamp the go tool embeds in the binary.
func GetVersionInfo() Info {
	infoOnce.Do(func() {
		info = Info{
			Version:   Version,
			Branch:    Branch,
			Revision:  Revision,
			BuiltAt:   BuiltAt,
			GoVersion: runtime.Version(),
		}
		if bi, ok := debug.ReadBuildInfo(); ok {
			applyBuildInfo(&info, bi)
		}
	})
	return info
}

func applyBuildInfo(i *Info, bi *debug.BuildInfo) {
	if i.Version == "0.0.0" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Revision == "unknown" {
				i.Revision = s.Value
				if len(i.Revision) > 7 {
					i.Revision = i.Revision[:7]
				}
			}
		case "vcs.time":
			if i.BuiltAt == "unknown" {
				i.BuiltAt = s.Value
			}
		}
	}
}

// String returns a string representation of version information
func (i Info) String() string {
	return fmt.Sprintf("Version: %s\nBranch: %s\nRevision: %s\nBuilt At: %s\nGo Version: %s",
		i.Version, i.Branch, i.Revision, i.BuiltAt, i.GoVersion)
}

// JSON returns a JSON representation of version information
func (i Info) JSON() (string, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Print prints version information to stdout
func Print() {
	fmt.Println(GetVersionInfo().String())
}
