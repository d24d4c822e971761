package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/portal"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, fills the login form and submits it.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, labelUsername, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.login.SetUsername(username)
	a.login.SetPassword(string(password))
	return a.Submit(ctx)
}

// Demo lists the demo accounts, or with an argument n fills the login form
// with account n without submitting it.
func (a *App) Demo(_ context.Context, args []string) error {
	accounts := portal.DemoAccounts()
	if len(args) == 0 {
		for i, acc := range accounts {
			printlnFn(fmt.Sprintf("  %d. %-16s %-12s %s", i+1, acc.Username, acc.Password, acc.Role))
		}
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usageError("demo <n>")
	}
	if err := a.login.FillDemo(n - 1); err != nil {
		printlnFn(fmt.Sprintf("No demo account %d (1-%d)", n, len(accounts)))
		return err
	}
	st := a.login.State()
	printlnFn(fmt.Sprintf("Login form filled with %s. Type 'submit' to sign in.", st.Username))
	return nil
}

// Submit sends the login form as it stands.
func (a *App) Submit(ctx context.Context) error {
	route, err := a.login.Submit(ctx)
	if err != nil {
		if errors.Is(err, portal.ErrSubmitInProgress) {
			printlnFn("A login is already in progress")
			return err
		}
		printlnFn(a.login.State().Error)
		return err
	}

	u, _ := a.auth.Current()
	printlnFn(fmt.Sprintf("Welcome, %s (%s)", u.Username, u.Role))
	a.shell.Navigate(route)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	a.shell.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// WhoAmI asks the server for the current profile.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.auth.Profile(ctx)
	if err != nil {
		a.reportAuthError(err)
		return err
	}
	printUser(u)
	return nil
}

// Register prompts for the account fields and creates the account. It does
// not sign in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, labelUsername, a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, labelEmail, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	role, err := GetRole(a.reader, a.out)
	if errors.Is(err, ErrUnknownRole) {
		printlnFn("Perfil desconhecido: use cidadão, advogado ou juiz")
		return err
	}
	if err != nil {
		return err
	}

	if username == "" || email == "" || len(password) == 0 {
		printlnFn(portal.MsgMissingCredential)
		return common.ErrMissingField
	}

	u, err := a.auth.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
		Role:     role,
	})
	if err != nil {
		a.log.Error(ctx, "registration failed", "username", username, "error", err)
		printlnFn(failureMessage(err, "Erro ao registar"))
		return err
	}
	printlnFn(fmt.Sprintf("Account %s created. Use 'login' to sign in.", u.Username))
	return nil
}

// Email changes the e-mail address of the signed-in user.
func (a *App) Email(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("email <address>")
	}
	u, err := a.auth.UpdateProfile(ctx, models.ProfileUpdate{Email: args[0]})
	if err != nil {
		a.reportAuthError(err)
		return err
	}
	printlnFn("Profile updated")
	printUser(u)
	return nil
}

func (a *App) reportAuthError(err error) {
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		printlnFn("Not logged in")
	case errors.Is(err, client.ErrUnauthorized):
		printlnFn("Session expired, please log in again")
	default:
		printlnFn(failureMessage(err, "Erro ao carregar o perfil"))
	}
}

// failureMessage prefers the server's own message, then the connection
// message on transport errors, then fallback.
func failureMessage(err error, fallback string) string {
	if msg := client.ServerMessage(err); msg != "" {
		return msg
	}
	if errors.Is(err, client.ErrUnavailable) {
		return portal.MsgConnectionFailed
	}
	return fallback
}

func printUser(u models.User) {
	printlnFn(fmt.Sprintf("%s <%s>  role: %s  since: %s", u.Username, u.Email, u.Role, u.CreatedAt.DisplayDate()))
}
