// Package flagx lets several configuration sources parse the same command
// line independently. Each source keeps only the flags it owns, so a flag set
// for the JSON loader never fails on flags meant for the storage settings.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps the flags listed in allowed, together with their values,
// and drops everything else.
//
// Both "-k value" and "-k=value" forms are recognised. A token that starts with
// "-" is never taken as the value of the preceding flag.
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := known[name]; keep {
				out = append(out, arg)
			}
			continue
		}

		if _, keep := known[arg]; !keep {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigFile returns the path given with -c or -config, or "" when neither
// flag is present on the command line.
func ConfigFile() string {
	return configFile(os.Args[1:])
}

func configFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
