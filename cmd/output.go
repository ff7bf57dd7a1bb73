package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/coach-cli/internal/remote"
	"github.com/spf13/cobra"
)

// fetch runs call behind a spinner on stderr, or directly when the output is JSON.
func fetch(cmd *cobra.Command, label string, asJSON bool, call func(context.Context) error) error {
	if asJSON {
		return call(cmd.Context())
	}

	return runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), label, call)
}

// resultError turns a failed store result into the error printed by cobra, leading with the
// user-facing message.
func resultError[T any](res remote.Result[T]) error {
	if res.OK() {
		return nil
	}
	if res.Message == "" || res.Message == res.Err.Error() {
		return res.Err
	}

	return fmt.Errorf("%s: %w", res.Message, res.Err)
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeRendered(cmd *cobra.Command, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func parseID(raw string, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return id, nil
}

func addJSONFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "json", false, "Render JSON output")
}
