// Package flagx lets several independent flag sets share one command line.
// The global configuration reads only the short flags it owns, and the CLI
// subcommands get the remaining arguments.
package flagx

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// FilterArgs returns the arguments that belong to allowedFlags, keeping their
// values.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      -config=conf.json
//
// A token that follows an allowed flag is taken as its value unless it starts
// with '-' and is not a number, so "-i -1" keeps -1 as the value.
func FilterArgs(args []string, allowedFlags []string) []string {
	kept, _ := partition(args, allowedFlags)
	return kept
}

// StripArgs is the complement of FilterArgs: it removes every allowed flag
// (and its value) and returns what is left, in order.
func StripArgs(args []string, flags []string) []string {
	_, rest := partition(args, flags)
	return rest
}

func partition(args []string, names []string) (kept, rest []string) {
	allowed := make(map[string]struct{}, len(names))
	for _, f := range names {
		allowed[f] = struct{}{}
	}

	kept = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				kept = append(kept, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			rest = append(rest, arg)
			continue
		}

		kept = append(kept, arg)
		if i+1 < len(args) && isValue(args[i+1]) {
			kept = append(kept, args[i+1])
			i++
		}
	}

	return kept, rest
}

func isValue(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return true
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// ConfigFileFlags are the flags naming the optional JSON config file.
var ConfigFileFlags = []string{"-c", "-config"}

// ConfigFileFlag returns the path given with -c or -config, or "" when
// neither is present. Other arguments are ignored.
func ConfigFileFlag() string {
	var config string

	args := FilterArgs(os.Args[1:], ConfigFileFlags)

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
