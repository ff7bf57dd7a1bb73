package cmd

import (
	"context"

	"github.com/bnema/coach-cli/internal/adapters/render/listing"
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/remote"
	"github.com/spf13/cobra"
)

func newCoachesCmd(ap *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coaches",
		Short: "Browse coaches",
	}

	entity := catalogEntity[domain.Coach]{
		name:       "coaches",
		listLabel:  "Chargement des coachs...",
		store:      func(a *app) *remote.Store[domain.Coach, remote.NoInput] { return a.state.Catalog.Coaches },
		renderList: listing.Coaches,
	}
	cmd.AddCommand(newCatalogListCmd(ap, entity), newCoachShowCmd(ap))

	return cmd
}

type coachDetailOutput struct {
	Coach   domain.Coach    `json:"coach"`
	Reviews []domain.Review `json:"reviews"`
}

// newCoachShowCmd shows a coach together with their reviews.
func newCoachShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a coach and their reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "coach")
			if err != nil {
				return err
			}

			var coach remote.Result[domain.Coach]
			err = fetch(cmd, "Chargement du coach...", asJSON, func(ctx context.Context) error {
				coach = app.state.Catalog.Coaches.FetchByID(ctx, id)
				if err := resultError(coach); err != nil {
					return err
				}
				return resultError(app.state.Reviews.FetchByCoach(ctx, id))
			})
			if err != nil {
				return err
			}

			reviews := app.state.Reviews.Snapshot().Items
			if asJSON {
				return writeJSON(cmd, coachDetailOutput{Coach: coach.Value, Reviews: nonNil(reviews)})
			}
			rendered, err := listing.Coach(coach.Value, reviews)
			return writeRendered(cmd, rendered, err)
		},
	}
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
