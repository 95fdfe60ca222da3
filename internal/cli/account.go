package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzmzeee/hashing-showcase/internal/accounts"
	"github.com/mzmzeee/hashing-showcase/internal/common"
)

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) register(ctx context.Context, args []string) error {
	username, err := a.usernameArg("register", args)
	if err != nil {
		return err
	}

	pw, err := GetPassword(a.errOut, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	again, err := GetPassword(a.errOut, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(again)

	if string(pw) != string(again) {
		return errPasswordMismatch
	}

	account, err := a.accounts.Register(ctx, username, string(pw))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "registered %s\n", account.Username)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	username, err := a.usernameArg("login", args)
	if err != nil {
		return err
	}

	account, err := a.authenticate(ctx, username)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged in as %s\n", account.Username)
	return nil
}

// delete asks for the account password before removing it.
func (a *App) delete(ctx context.Context, args []string) error {
	username, err := a.usernameArg("delete", args)
	if err != nil {
		return err
	}

	account, err := a.authenticate(ctx, username)
	if err != nil {
		return err
	}
	if err := a.accounts.Delete(ctx, account.Username); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted %s\n", account.Username)
	return nil
}

func (a *App) authenticate(ctx context.Context, username string) (*accounts.Account, error) {
	pw, err := GetPassword(a.errOut, "Enter password for "+username)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(pw)

	return a.accounts.Login(ctx, username, string(pw))
}

// usernameArg returns the single positional argument, prompting for it when
// none was given.
func (a *App) usernameArg(name string, args []string) (string, error) {
	fs := a.flagSet(name)
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	switch fs.NArg() {
	case 1:
		return fs.Arg(0), nil
	case 0:
		username, err := GetSimpleText(a.reader, "Enter username", a.errOut)
		if err != nil || username == "" {
			return "", usageError("%s <username>", name)
		}
		return username, nil
	}
	return "", usageError("%s <username>", name)
}
