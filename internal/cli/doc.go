// Package cli implements the hashsig command line.
//
// Every invocation runs one subcommand:
//
//	hashsig [global flags] <command> [command flags] [args]
//
// Global flags are the configuration flags of package config and may appear
// anywhere on the command line; they are stripped before the subcommand
// parses its own (long, double-dash) flags with pflag.
//
// Without a database DSN accounts live in memory and vanish when the command
// exits, so register/login/keys/delete are only useful with -d. The demo
// command works either way.
package cli
