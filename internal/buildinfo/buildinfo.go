// Package buildinfo carries the version stamped into the binary.
//
// Set the values at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/staffkeeper/internal/buildinfo.buildVersion=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const notAvailable = "N/A"

type Info struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func Get() Info {
	return Info{
		Version: orNA(buildVersion),
		Date:    orNA(buildDate),
		Commit:  orNA(buildCommit),
	}
}

// PrintBuildData writes the build banner to w.
func PrintBuildData(w io.Writer) {
	i := Get()
	fmt.Fprintf(w, "Build version: %s\n", i.Version)
	fmt.Fprintf(w, "Build date: %s\n", i.Date)
	fmt.Fprintf(w, "Build commit: %s\n", i.Commit)
}
