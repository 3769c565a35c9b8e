package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/style"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Login prompts the user for credentials and tries to authenticate.
//
// On success it prints a confirmation, performs the initial bulk fetch and
// renders the first page of the listing. On failure the error stored in
// the auth manager is rendered and returned. The password byte slice is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, style.ErrorPrefix, a.auth.Err())
		return err
	}

	fmt.Fprintln(a.out, style.SuccessPrefix, "Logged in")

	a.query = ""
	a.page = 1
	return a.List(ctx)
}

// Logout clears the session. It never fails: the token and its persisted
// copy are gone regardless of prior state.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	a.query = ""
	a.page = 1
	fmt.Fprintln(a.out, style.SuccessPrefix, "Logged out")
	return nil
}

// ClearErrors resets the error status of both managers.
func (a *App) ClearErrors(ctx context.Context) error {
	a.auth.ClearError()
	a.users.ClearError()
	return nil
}
