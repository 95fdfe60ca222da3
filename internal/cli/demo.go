package cli

import (
	"context"
	"fmt"

	"github.com/mzmzeee/hashing-showcase/internal/common"
	"github.com/mzmzeee/hashing-showcase/internal/signature"
	"github.com/mzmzeee/hashing-showcase/internal/signing"
)

const defaultDemoMessage = "Hi Bob, it's Alice. Meet me at noon."

type demoResult struct {
	Seeded  []string          `json:"seeded"`
	Genuine *signature.Record `json:"genuine"`
	Forged  *signature.Record `json:"forged"`
}

// demo seeds alice, bob and evil_bob, signs a message as alice and verifies
// it once with alice's public key and once with evil_bob's.
func (a *App) demo(ctx context.Context, args []string) error {
	fs := a.flagSet("demo")
	message := fs.String("message", defaultDemoMessage, "message alice signs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seeded, err := a.accounts.SeedDemoUsers(ctx, common.DemoUsernames, common.DemoPassword)
	if err != nil {
		return err
	}

	alice, err := a.accounts.Login(ctx, "alice", common.DemoPassword)
	if err != nil {
		return fmt.Errorf("demo user alice: %w", err)
	}

	sig, err := signing.Sign(alice.PrivateKey, *message)
	if err != nil {
		return err
	}

	alicePub, err := a.publicKey(ctx, "alice")
	if err != nil {
		return err
	}
	evilPub, err := a.publicKey(ctx, "evil_bob")
	if err != nil {
		return err
	}

	genuine, err := a.visualizer.Visualize(*message, sig, alicePub)
	if err != nil {
		return err
	}
	forged, err := a.visualizer.Visualize(*message, sig, evilPub)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "demo finished",
		"genuine", genuine.Status(), "forged", forged.Status())

	return a.printJSON(demoResult{Seeded: seeded, Genuine: genuine, Forged: forged})
}
