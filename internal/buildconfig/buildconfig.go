package buildconfig

import "runtime"

// Set with -ldflags "-X github.com/Harshitk-cp/brandlens/internal/buildconfig.version=..."
var (
	version = "dev"
	commit  = "unknown"
)

const serviceName = "brandlens"

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// Info describes the running build.
type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

func BuildInfo() Info {
	return Info{
		Service:   serviceName,
		Version:   version,
		Commit:    commit,
		GoVersion: runtime.Version(),
	}
}
