package core

const (
	fileMode = 0644
	divider  = "------------------------------------------------------------------------------"
)

// Filled in through ldflags at build time.
var (
	GitCommit    string //nolint:gochecknoglobals
	ProbeVersion string //nolint:gochecknoglobals
	BuiltTime    string //nolint:gochecknoglobals
	OsArch       string //nolint:gochecknoglobals
)
