package version

import (
	"fmt"
	"runtime"
)

var (
	BuildDate string
	GitCommit string
	Version   = "dev"
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
)
