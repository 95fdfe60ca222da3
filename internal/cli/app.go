package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mzmzeee/hashing-showcase/internal/accounts"
	"github.com/mzmzeee/hashing-showcase/internal/config"
	"github.com/mzmzeee/hashing-showcase/internal/cryptox"
	"github.com/mzmzeee/hashing-showcase/internal/flagx"
	"github.com/mzmzeee/hashing-showcase/internal/logging"
	"github.com/mzmzeee/hashing-showcase/internal/signature"
	"github.com/mzmzeee/hashing-showcase/internal/storage"
	"github.com/spf13/pflag"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var errUsage = errors.New("usage")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

type command struct {
	summary string
	run     func(ctx context.Context, args []string) error
}

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      storage.Manager
	accounts   *accounts.Service
	stretcher  *cryptox.Stretcher
	visualizer *signature.Visualizer

	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp opens the account store named by the configuration and wires the
// services. Logs go to stderr as JSON.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, c.DatabaseDSN, c.DBTimeout)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return newApp(c, store, logger, os.Stdin, os.Stdout, os.Stderr), nil
}

func newApp(c *config.Config, store storage.Manager, logger logging.Logger, in io.Reader, out, errOut io.Writer) *App {
	return &App{
		config:     c,
		logger:     logger,
		store:      store,
		accounts:   accounts.NewService(store, c, logger),
		stretcher:  cryptox.NewStretcher(c.StretchParams()),
		visualizer: signature.NewVisualizer(),
		reader:     bufio.NewReader(in),
		out:        out,
		errOut:     errOut,
	}
}

// Close releases the account store.
func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"hash":      {"print the digest of a message", a.hash},
		"stretch":   {"derive a credential hash from a password", a.stretch},
		"keygen":    {"create an RSA key pair", a.keygen},
		"sign":      {"sign a message with a private key", a.sign},
		"visualize": {"replay signature verification step by step", a.visualize},
		"register":  {"create an account", a.register},
		"login":     {"check an account password", a.login},
		"keys":      {"list account public keys", a.keys},
		"delete":    {"delete an account and its keys", a.delete},
		"demo":      {"seed demo users and show a genuine and a forged signature", a.demo},
		"help":      {"show this help", a.help},
	}
}

// Run executes the subcommand named by args[0] and returns the process exit
// code. Configuration flags in args are ignored here.
func (a *App) Run(ctx context.Context, args []string) int {
	args = flagx.StripArgs(args, config.FlagNames)
	if len(args) == 0 {
		a.usage(a.errOut)
		return ExitUsage
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		fmt.Fprintf(a.errOut, "unknown command %q\n\n", args[0])
		a.usage(a.errOut)
		return ExitUsage
	}

	if err := cmd.run(ctx, args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(a.errOut, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}

func (a *App) help(context.Context, []string) error {
	a.usage(a.out)
	return nil
}

func (a *App) usage(w io.Writer) {
	fmt.Fprintln(w, "usage: hashsig [global flags] <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")

	cmds := a.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, cmds[name].summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "global flags: -c/-config file, -d dsn, -o timeout, -k construction, -i iterations,")
	fmt.Fprintln(w, "  -x max iterations, -m argon2 KiB, -p argon2 lanes, -s salt bytes, -b key bits, -l log level")
}

func (a *App) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}
