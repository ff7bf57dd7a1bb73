package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/coach-cli/internal/adapters/render/listing"
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/spf13/cobra"
)

var startTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}

func newSessionsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Schedule and join video coaching sessions",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsCreateCmd(app),
		newSessionsJoinCmd(app),
		newSessionsTokenCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := fetch(cmd, "Chargement des séances...", asJSON, func(ctx context.Context) error {
				return resultError(app.state.Sessions.List(ctx))
			})
			if err != nil {
				return err
			}

			sessions := app.state.Sessions.Snapshot().Items
			if asJSON {
				return writeJSON(cmd, nonNil(sessions))
			}
			rendered, err := listing.Sessions(sessions, listing.Options{Now: app.clock.Now()})
			return writeRendered(cmd, rendered, err)
		},
	}
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newSessionsCreateCmd(app *app) *cobra.Command {
	var draft domain.SessionDraft
	var start string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a session with a guest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startTime, err := parseStartTime(start)
			if err != nil {
				return err
			}
			draft.StartTime = startTime

			res := app.state.Sessions.Create(cmd.Context(), draft)
			if err := resultError(res); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, res.Value)
			}
			rendered, err := listing.Session(res.Value, listing.Options{Now: app.clock.Now()})
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().StringVar(&draft.Topic, "topic", "", "Session topic (5 to 100 characters)")
	cmd.Flags().StringVar(&start, "start", "", "Start time, RFC 3339 or local \"YYYY-MM-DD HH:MM\"")
	cmd.Flags().IntVar(&draft.Duration, "duration", domain.MinDuration, "Duration in minutes (30 to 240, steps of 15)")
	cmd.Flags().StringVar(&draft.GuestID, "guest", "", "Guest user ID")
	addJSONFlag(cmd, &asJSON)
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("guest")

	return cmd
}

func newSessionsJoinCmd(app *app) *cobra.Command {
	var noOpen bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "join <id>",
		Short: "Fetch a session's join link and open it in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "session")
			if err != nil {
				return err
			}

			join := app.state.Sessions.Join
			if noOpen {
				join = app.state.Sessions.JoinURL
			}

			res := join(cmd.Context(), id)
			if res.Value.JoinURL == "" {
				if err := resultError(res); err != nil {
					return err
				}
			}

			if asJSON {
				if err := writeJSON(cmd, res.Value); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.Value.JoinURL); err != nil {
				return err
			}

			return resultError(res)
		},
	}

	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Print the join link without opening a browser")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

type meetingTokenOutput struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func newSessionsTokenCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a video SDK token for the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := app.state.Sessions.ZoomToken(cmd.Context())
			if err := resultError(res); err != nil {
				return err
			}

			out := meetingTokenOutput{Token: res.Value.Token}
			if !res.Value.ExpiresAt.IsZero() {
				expiresAt := res.Value.ExpiresAt
				out.ExpiresAt = &expiresAt
			}
			if asJSON {
				return writeJSON(cmd, out)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), out.Token)
			return err
		},
	}
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func parseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for i, layout := range startTimeLayouts {
		var parsed time.Time
		var err error
		if i == 0 {
			parsed, err = time.Parse(layout, raw)
		} else {
			parsed, err = time.ParseInLocation(layout, raw, time.Local)
		}
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid start time %q (use RFC 3339 or \"YYYY-MM-DD HH:MM\")", raw)
}
