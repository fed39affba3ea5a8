package app

import "fmt"

// Stamped at link time, e.g.
//
//	-ldflags "-X github.com/heartmarshall/campusdesk-backend/internal/app.Version=v1.4.0 \
//	          -X github.com/heartmarshall/campusdesk-backend/internal/app.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported by the startup log and the health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s (%s)", Version, shortCommit(Commit), BuildTime)
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}
