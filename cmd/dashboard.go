package cmd

import (
	"context"
	"errors"

	"github.com/bnema/coach-cli/internal/adapters/render/listing"
	"github.com/bnema/coach-cli/internal/application"
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/spf13/cobra"
)

type dashboardOutput struct {
	User      *domain.User      `json:"user,omitempty"`
	Coaches   []domain.Coach    `json:"coaches"`
	Plans     []domain.Plan     `json:"plans"`
	Resources []domain.Resource `json:"resources"`
	Sessions  []domain.Session  `json:"sessions,omitempty"`
	Errors    []string          `json:"errors,omitempty"`
}

func newDashboardCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Home screen: session, coaches, programmes, resources and upcoming sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var auth application.AuthState
			err := fetch(cmd, "Chargement du tableau de bord...", asJSON, func(ctx context.Context) error {
				auth = app.state.Auth.CheckAuth(ctx)
				refreshErr := app.state.Refresh(ctx)
				if auth.Status == domain.AuthAuthenticated {
					app.state.Sessions.List(ctx)
				}
				if errors.Is(refreshErr, context.Canceled) {
					return refreshErr
				}
				return nil
			})
			if err != nil {
				return err
			}

			out := collectDashboard(app.state, auth)
			if asJSON {
				return writeJSON(cmd, out)
			}

			rendered, err := listing.RenderDashboard(listing.Dashboard{
				User:      out.User,
				Coaches:   out.Coaches,
				Plans:     out.Plans,
				Resources: out.Resources,
				Sessions:  out.Sessions,
				Errors:    out.Errors,
			}, listing.Options{Now: app.clock.Now()})
			return writeRendered(cmd, rendered, err)
		},
	}
	addJSONFlag(cmd, &asJSON)

	return cmd
}

// collectDashboard reads every store once; a failed store contributes its message and its
// last known-good items.
func collectDashboard(state *application.State, auth application.AuthState) dashboardOutput {
	coaches := state.Catalog.Coaches.Snapshot()
	plans := state.Catalog.Plans.Snapshot()
	resources := state.Catalog.Resources.Snapshot()

	out := dashboardOutput{
		User:      auth.User,
		Coaches:   nonNil(coaches.Items),
		Plans:     nonNil(plans.Items),
		Resources: nonNil(resources.Items),
	}
	for _, message := range []string{coaches.Err, plans.Err, resources.Err} {
		if message != "" {
			out.Errors = append(out.Errors, message)
		}
	}

	if auth.Status == domain.AuthAuthenticated {
		sessions := state.Sessions.Snapshot()
		out.Sessions = nonNil(sessions.Items)
		if sessions.Err != "" {
			out.Errors = append(out.Errors, sessions.Err)
		}
	}

	return out
}
