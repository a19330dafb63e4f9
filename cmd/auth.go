package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotui/internal/models"
	"github.com/desertthunder/spotui/internal/session"
	"github.com/desertthunder/spotui/internal/shared"
)

// authStatus is the JSON shape of `auth status`.
type authStatus struct {
	LoggedIn bool         `json:"loggedIn"`
	User     *models.User `json:"user"`
}

// AuthSignUp validates the sign-up fields, stores the profile and logs in.
func (r *Runner) AuthSignUp(ctx context.Context, cmd *cli.Command) error {
	form := session.SignUpForm{
		Email:    strings.TrimSpace(cmd.String("email")),
		Password: cmd.String("password"),
		FullName: strings.TrimSpace(cmd.String("name")),
		Gender:   parseGender(cmd.String("gender")),
	}

	if birth := strings.TrimSpace(cmd.String("birth")); birth != "" {
		t, err := time.Parse(time.DateOnly, birth)
		if err != nil {
			return fmt.Errorf("%w: birth date %q, expected YYYY-MM-DD", shared.ErrInvalidArgument, birth)
		}
		form.Day, form.Month, form.Year = t.Format("02"), t.Format("01"), t.Format("2006")
	}

	app, err := r.state(ctx)
	if err != nil {
		return err
	}
	if err := app.Session.SignUp(ctx, form); err != nil {
		return err
	}

	return r.writePlain("✓ Account created for %s\n", form.FullName)
}

func parseGender(s string) session.Gender {
	switch {
	case strings.EqualFold(s, string(session.Male)):
		return session.Male
	case strings.EqualFold(s, string(session.Female)):
		return session.Female
	default:
		return session.Gender(s)
	}
}

// AuthLogin logs in as identifier, replacing a stored profile that does not match.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	identifier := cmd.StringArg("identifier")

	app, err := r.state(ctx)
	if err != nil {
		return err
	}
	if err := app.Session.Login(ctx, identifier, cmd.String("password")); err != nil {
		return err
	}

	app.RefreshUser(ctx)
	return r.writePlain("✓ Logged in as %s\n", app.DisplayName())
}

// AuthLogout clears the logged-in flag.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	app, err := r.state(ctx)
	if err != nil {
		return err
	}
	app.Session.Logout(ctx)
	return r.writePlain("✓ Logged out\n")
}

// AuthStatus prints the login flag and the stored profile.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	app, err := r.state(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(authStatus{LoggedIn: app.LoggedIn, User: app.User}, true)
	}

	r.writePlainHeader("Account")
	r.writePlain("Logged in: %t\n", app.LoggedIn)
	if app.User == nil {
		return r.writePlain("No profile stored\n")
	}
	r.writePlain("Name:      %s\n", app.User.Name)
	r.writePlain("Email:     %s\n", app.User.Email)
	if app.User.Username != "" {
		r.writePlain("Username:  %s\n", app.User.Username)
	}
	return nil
}
