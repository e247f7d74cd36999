package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/articlegate/internal/common"
)

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	user, err := a.api.Register(ctx, userName, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			fmt.Fprintln(a.out, "That user name is already taken")
		} else {
			fmt.Fprintf(a.out, "Registration failed: %s\n", err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "Registered %s, you can now log in\n", user.Username)
	return nil
}
