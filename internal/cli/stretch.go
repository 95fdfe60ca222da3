package cli

import (
	"context"
	"fmt"

	"github.com/mzmzeee/hashing-showcase/internal/common"
	"github.com/mzmzeee/hashing-showcase/internal/cryptox"
)

// stretch derives a credential hash for a prompted password with the
// configured construction.
func (a *App) stretch(_ context.Context, args []string) error {
	fs := a.flagSet("stretch")
	saltHex := fs.String("salt", "", "salt as hex (random when empty)")
	iterations := fs.Int("iterations", 0, "iterations or time cost (0: configured value)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var salt []byte
	if *saltHex != "" {
		b, err := cryptox.FromHex(*saltHex)
		if err != nil {
			return fmt.Errorf("%w: salt is not hex", common.ErrMalformedInput)
		}
		salt = b
	} else {
		b, err := cryptox.GenerateSalt(a.config.SaltSize)
		if err != nil {
			return err
		}
		salt = b
	}

	pw, err := GetPassword(a.errOut, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	requested := *iterations
	if requested == 0 {
		requested = a.config.Iterations
	}
	n := a.stretcher.EffectiveIterations(requested)
	hash := a.stretcher.Stretch(string(pw), salt, n)

	fmt.Fprintf(a.out, "construction: %s\n", a.stretcher.Params().Construction)
	fmt.Fprintf(a.out, "iterations:   %d\n", n)
	fmt.Fprintf(a.out, "salt:         %s\n", cryptox.ToHex(salt))
	fmt.Fprintf(a.out, "hash:         %s\n", hash)
	return nil
}
