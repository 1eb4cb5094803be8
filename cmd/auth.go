package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/ewhitmore/glossa/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthSignin exchanges credentials for a bearer token and persists the
// session. Subsequent invocations pick the token up from the database.
func (r *Runner) AuthSignin(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	email := cmd.String("email")
	password := cmd.String("password")

	if password == "" {
		r.writePlain("Password: ")
		reader := bufio.NewReader(r.input)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("%w: failed to read password", shared.ErrMissingArgument)
		}
		password = strings.TrimSpace(line)
	}

	if password == "" {
		return fmt.Errorf("%w: password is required", shared.ErrMissingArgument)
	}

	r.logger.Info("signing in", "email", email)

	session, err := r.api.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	if err := r.sessions.Put(session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	name := session.Name
	if name == "" {
		name = session.Email
	}
	return r.writePlain("✓ Signed in as %s\n", name)
}

// AuthStatus reports the persisted session without calling the server.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	session, err := r.sessions.Current()
	if err != nil {
		return r.writePlain("✗ Not signed in\n")
	}

	r.writePlain("✓ Signed in\n")
	r.writePlain("Email: %s\n", session.Email)
	if session.Name != "" {
		r.writePlain("Name: %s\n", session.Name)
	}
	r.writePlain("Since: %s\n", session.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

// AuthSignout discards the persisted session. The server-side token is not
// revoked; it simply stops being sent.
func (r *Runner) AuthSignout(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	if err := r.sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return r.writePlain("✓ Signed out\n")
}
