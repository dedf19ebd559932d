package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/staffkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   local storage file, or ":memory:"
//	-k string   key of the data blob
//	-q int      local storage quota in bytes (0 = unlimited)
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with -c/-config.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-k", "-q", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "local storage file")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "local storage key of the data blob")
	fs.Int64Var(&cfg.StorageQuota, "q", cfg.StorageQuota, "local storage quota in bytes")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
