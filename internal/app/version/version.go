package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Overridden at build time with
// -ldflags "-X ipinspect/internal/app/version.buildVersion=... -X ...builtAt=...".
var (
	buildVersion = "dev"
	builtAt      = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	BuiltAt   string
	GoVersion string
	// Revision is the VCS commit stamped by the go tool, if any.
	Revision string
	Modified bool
}

func Get() Info {
	info := Info{
		Version:   buildVersion,
		BuiltAt:   builtAt,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		case "vcs.time":
			if info.BuiltAt == "unknown" {
				info.BuiltAt = setting.Value
			}
		}
	}
	return info
}

func (i Info) String() string {
	s := fmt.Sprintf("%s (built %s, %s", i.Version, i.BuiltAt, i.GoVersion)
	if i.Revision != "" {
		rev := i.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		s += ", rev " + rev
		if i.Modified {
			s += "+dirty"
		}
	}
	return s + ")"
}
