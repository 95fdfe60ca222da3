package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mzmzeee/hashing-showcase/internal/blockhash"
)

// hash prints the digest of the positional arguments joined by spaces, of a
// file, or of standard input.
func (a *App) hash(_ context.Context, args []string) error {
	fs := a.flagSet("hash")
	file := fs.String("file", "", "hash the contents of this file")
	verbose := fs.Bool("verbose", false, "also print the padded length and block count")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var data []byte
	switch {
	case *file != "":
		b, err := os.ReadFile(*file)
		if err != nil {
			return err
		}
		data = b
	case fs.NArg() > 0:
		data = []byte(strings.Join(fs.Args(), " "))
	default:
		b, err := io.ReadAll(a.reader)
		if err != nil {
			return err
		}
		data = b
	}

	if *verbose {
		padded := blockhash.Pad(data)
		fmt.Fprintf(a.out, "message bytes: %d\n", len(data))
		fmt.Fprintf(a.out, "padded bytes:  %d\n", len(padded))
		fmt.Fprintf(a.out, "blocks:        %d\n", len(padded)/blockhash.BlockSize)
	}
	fmt.Fprintln(a.out, blockhash.Sum(data).Hex())
	return nil
}
