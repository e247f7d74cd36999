package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/articlegate/internal/common"
)

func (a *App) Login(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.api.Login(ctx, userName, string(password)); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Incorrect username or password")
		} else {
			fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		}
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", user.Username, user.Email)
	return nil
}
