package cmd

import (
	"context"

	"github.com/bnema/coach-cli/internal/adapters/render/listing"
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newReviewsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and post coach reviews",
	}

	cmd.AddCommand(newReviewsListCmd(app), newReviewsAddCmd(app))

	return cmd
}

func newReviewsListCmd(app *app) *cobra.Command {
	var coachID int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the reviews of a coach, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := fetch(cmd, "Chargement des avis...", asJSON, func(ctx context.Context) error {
				return resultError(app.state.Reviews.FetchByCoach(ctx, coachID))
			})
			if err != nil {
				return err
			}

			reviews := app.state.Reviews.Snapshot().Items
			if asJSON {
				return writeJSON(cmd, nonNil(reviews))
			}
			rendered, err := listing.Reviews(reviews)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().Int64Var(&coachID, "coach", 0, "Coach ID")
	addJSONFlag(cmd, &asJSON)
	_ = cmd.MarkFlagRequired("coach")

	return cmd
}

func newReviewsAddCmd(app *app) *cobra.Command {
	var input domain.ReviewInput
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post a review for a coach",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := app.state.Reviews.Add(cmd.Context(), input)
			if err := resultError(res); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, res.Value)
			}
			rendered, err := listing.Reviews([]domain.Review{res.Value})
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().Int64Var(&input.CoachID, "coach", 0, "Coach ID")
	cmd.Flags().IntVar(&input.Rating, "rating", 0, "Rating from 1 to 5")
	cmd.Flags().StringVar(&input.Description, "description", "", "Review text")
	addJSONFlag(cmd, &asJSON)
	_ = cmd.MarkFlagRequired("coach")
	_ = cmd.MarkFlagRequired("rating")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
