package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String(tool string) string {
	return fmt.Sprintf("%s %s (commit=%s, date=%s)", tool, Version, Commit, Date)
}
