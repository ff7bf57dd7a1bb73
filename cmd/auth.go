package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/coach-cli/internal/adapters/render/listing"
	"github.com/bnema/coach-cli/internal/application"
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errNotAuthenticated = errors.New("not signed in")

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign up and manage the stored session",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthRegisterCmd(app),
		newAuthLogoutCmd(app),
		newAuthCheckCmd(app),
		newAuthStatusCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var email string
	var password string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := passwordOrStdin(password, cmd.InOrStdin())
			if err != nil {
				return err
			}

			res := app.state.Auth.Login(cmd.Context(), email, secret)
			if err := resultError(res); err != nil {
				return err
			}

			return writeAuthState(cmd, app.state.Auth.State(), asJSON)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (read from stdin when omitted)")
	addJSONFlag(cmd, &asJSON)
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthRegisterCmd(app *app) *cobra.Command {
	var registration domain.Registration
	var role string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := passwordOrStdin(registration.Password, cmd.InOrStdin())
			if err != nil {
				return err
			}
			registration.Password = secret
			registration.Role = domain.Role(strings.ToLower(strings.TrimSpace(role)))

			res := app.state.Auth.Register(cmd.Context(), registration)
			if err := resultError(res); err != nil {
				return err
			}

			return writeAuthState(cmd, app.state.Auth.State(), asJSON)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&registration.Nom, "nom", "", "Last name")
	flags.StringVar(&registration.Prenom, "prenom", "", "First name")
	flags.StringVar(&registration.Email, "email", "", "Account email")
	flags.StringVar(&registration.Password, "password", "", "Account password (read from stdin when omitted)")
	flags.StringVar(&registration.Telephone, "telephone", "", "Phone number")
	flags.StringVar(&registration.DateNaissance, "date-naissance", "", "Birth date (YYYY-MM-DD)")
	flags.StringVar(&registration.Adresse, "adresse", "", "Postal address")
	flags.StringVar(&registration.Genre, "genre", "", "Gender (homme|femme)")
	flags.StringVar(&registration.SituationFamilliale, "situation", "", "Family situation")
	flags.StringVar(&role, "role", string(domain.RoleCoachee), "Account role (coache|coach)")
	addJSONFlag(cmd, &asJSON)
	_ = cmd.MarkFlagRequired("nom")
	_ = cmd.MarkFlagRequired("prenom")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.state.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Déconnecté.")
			return err
		},
	}
}

func newAuthCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Revalidate the stored session; fails when nobody is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.state.Auth.CheckAuth(cmd.Context())
			if state.Status != domain.AuthAuthenticated {
				return errNotAuthenticated
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), state.User.Email)
			return err
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var state application.AuthState
			err := fetch(cmd, "Vérification de la session...", asJSON, func(ctx context.Context) error {
				state = app.state.Auth.CheckAuth(ctx)
				return nil
			})
			if err != nil {
				return err
			}

			return writeAuthState(cmd, state, asJSON)
		},
	}
	addJSONFlag(cmd, &asJSON)

	return cmd
}

type authStatusOutput struct {
	Status domain.AuthStatus `json:"status"`
	User   *domain.User      `json:"user,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// writeAuthState never prints the token.
func writeAuthState(cmd *cobra.Command, state application.AuthState, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, authStatusOutput{Status: state.Status, User: state.User, Error: state.Err})
	}

	rendered, err := listing.AuthStatus(state.Status, state.User, state.Err)
	return writeRendered(cmd, rendered, err)
}

func passwordOrStdin(password string, in io.Reader) (string, error) {
	if password != "" {
		return password, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("password is required (use --password or pipe it on stdin)")
	}

	return line, nil
}
