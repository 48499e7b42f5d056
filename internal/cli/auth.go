package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pratikshau1/vaultnotes/internal/accounts"
	"github.com/pratikshau1/vaultnotes/internal/common"
	"github.com/pratikshau1/vaultnotes/internal/filex"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Register prompts for a username, a login password, and a vault passphrase,
// creates the account, and unlocks the session.
//
// The recovery key is displayed exactly once, with an optional save to file.
// It cannot be shown again: no plaintext copy of it survives this call.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getSecret("Enter login password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	passphrase, err := getSecret("Enter vault passphrase", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	sess, recoveryKey, err := a.accounts.Register(ctx, username, string(password), string(passphrase))
	if err != nil {
		fmt.Println("Registration failed:", err.Error())
		return err
	}
	a.session = sess

	fmt.Println("Success! Your recovery key is:")
	fmt.Println()
	fmt.Println("  " + recoveryKey)
	fmt.Println()
	fmt.Println("Store it somewhere safe. It is shown only this once and")
	fmt.Println("cannot be recovered later — without it, a forgotten vault")
	fmt.Println("passphrase means your data is gone for good.")

	path, err := getSimpleText(a.reader, "Save recovery key to file (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if path != "" {
		if err := filex.WriteFileAtomic(path, []byte(recoveryKey+"\n"), 0o600); err != nil {
			fmt.Println("Could not save the key:", err.Error())
			return err
		}
		fmt.Println("Saved to", path)
	}
	return nil
}

// Login prompts for credentials and unlocks the vault.
//
// The vault passphrase is not verified here; a wrong one shows up later as
// notes that fail to decrypt. Logging out and back in with the right
// passphrase fixes that.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getSecret("Enter login password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	passphrase, err := getSecret("Enter vault passphrase", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	sess, err := a.accounts.Login(ctx, username, string(password), string(passphrase))
	if err != nil {
		var ce *accounts.CredentialsError
		var le *accounts.LockedError
		switch {
		case errors.As(err, &ce):
			fmt.Printf("Wrong password. %d attempts remaining before lockout.\n", ce.AttemptsRemaining)
		case errors.As(err, &le):
			fmt.Printf("Account locked. Try again in %d minutes.\n", le.Minutes())
		case errors.Is(err, common.ErrUserNotFound):
			fmt.Println("No such user.")
		default:
			fmt.Println("Login failed:", err.Error())
		}
		return err
	}

	a.session = sess
	fmt.Println("Vault unlocked.")
	return nil
}

// Recover prompts for a username and recovery key and displays the escrowed
// vault passphrase. It does not log the user in; use login afterwards.
func (a *App) Recover(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	recoveryKey, err := getSimpleText(a.reader, "Enter recovery key", os.Stdout)
	if err != nil {
		return err
	}

	passphrase, err := a.accounts.Recover(ctx, username, recoveryKey)
	if err != nil {
		if errors.Is(err, common.ErrInvalidRecoveryKey) {
			fmt.Println("That recovery key does not match.")
		} else {
			fmt.Println("Recovery failed:", err.Error())
		}
		return err
	}

	fmt.Println("Your vault passphrase is:")
	fmt.Println()
	fmt.Println("  " + passphrase)
	fmt.Println()
	fmt.Println("Use it with the login command.")
	return nil
}

// Logout tears the session down, wiping the vault key.
func (a *App) Logout(ctx context.Context) error {
	a.session.Teardown()
	a.session = nil
	fmt.Println("Vault locked.")
	return nil
}
