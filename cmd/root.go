package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "coach",
		Short:         "Coaching platform client: coaches, programmes, reviews and video sessions",
		Long:          "coach signs you in to the coaching platform API, browses coaches, programmes and resources, posts reviews and schedules or joins video sessions from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd.ErrOrStderr(), verbose)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and state transitions at debug level")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newCoachesCmd(app),
		newReviewsCmd(app),
		newResourcesCmd(app),
		newPlansCmd(app),
		newSessionsCmd(app),
		newProfileCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
