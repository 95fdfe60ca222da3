package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/mzmzeee/hashing-showcase/internal/common"
	"github.com/mzmzeee/hashing-showcase/internal/flagx"
)

// parseFlags populates Config fields from the short command-line flags listed
// in the package doc. Arguments that are not configuration flags (the
// subcommand and its own flags) are filtered out first with flagx.FilterArgs.
//
// The timeout flag is given in whole seconds. -m must fit in 32 bits and -p
// in 8 bits.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-o", "-k", "-i", "-x", "-m", "-p", "-s", "-b", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN (empty: in-memory accounts)")
	dbTimeout := fs.Int("o", int(config.DBTimeout.Seconds()), "database connect timeout (in seconds)")
	fs.StringVar(&config.HashConstruction, "k", config.HashConstruction, "password stretching construction (argon2id|iterated)")
	fs.IntVar(&config.Iterations, "i", config.Iterations, "password stretching iterations")
	fs.IntVar(&config.MaxIterations, "x", config.MaxIterations, "iteration ceiling (0: construction default)")
	memory := fs.Uint64("m", uint64(config.Argon2MemoryKiB), "argon2 memory (KiB)")
	lanes := fs.Uint64("p", uint64(config.Argon2Lanes), "argon2 lanes")
	fs.IntVar(&config.SaltSize, "s", config.SaltSize, "salt size (bytes)")
	fs.IntVar(&config.KeyBits, "b", config.KeyBits, "RSA key size (bits)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidArgument, err)
	}

	if *memory > math.MaxUint32 {
		return fmt.Errorf("%w: -m %d exceeds %d KiB", common.ErrInvalidArgument, *memory, uint32(math.MaxUint32))
	}
	if *lanes > math.MaxUint8 {
		return fmt.Errorf("%w: -p %d exceeds %d lanes", common.ErrInvalidArgument, *lanes, math.MaxUint8)
	}

	config.DBTimeout = time.Duration(*dbTimeout) * time.Second
	config.Argon2MemoryKiB = uint32(*memory)
	config.Argon2Lanes = uint8(*lanes)
	return nil
}
