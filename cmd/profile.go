package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/coach-cli/internal/adapters/render/listing"
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/spf13/cobra"
)

const maxPhotoBytes = 5 << 20

var errProfileUnavailable = errors.New("profile unavailable")

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileUpdateCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := fetch(cmd, "Chargement du profil...", asJSON, func(ctx context.Context) error {
				return resultError(app.state.Profile.Fetch(ctx))
			})
			if err != nil {
				return err
			}

			return writeProfile(cmd, app, asJSON)
		},
	}
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var update domain.ProfileUpdate
	var photoPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields; only the flags you pass are sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if photoPath != "" {
				photo, err := readPhoto(photoPath)
				if err != nil {
					return err
				}
				update.Photo = photo
			}

			if err := resultError(app.state.Profile.Update(cmd.Context(), update)); err != nil {
				return err
			}

			return writeProfile(cmd, app, asJSON)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&update.Nom, "nom", "", "Last name")
	flags.StringVar(&update.Prenom, "prenom", "", "First name")
	flags.StringVar(&update.Email, "email", "", "Email")
	flags.StringVar(&update.Telephone, "telephone", "", "Phone number")
	flags.StringVar(&update.DateNaissance, "date-naissance", "", "Birth date (YYYY-MM-DD)")
	flags.StringVar(&update.Adresse, "adresse", "", "Postal address")
	flags.StringVar(&update.Genre, "genre", "", "Gender (homme|femme)")
	flags.StringVar(&update.SituationFamilliale, "situation", "", "Family situation")
	flags.StringVar(&photoPath, "photo", "", "Path to a profile picture to upload")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func writeProfile(cmd *cobra.Command, app *app, asJSON bool) error {
	profile := app.state.Profile.Snapshot().Selected
	if profile == nil {
		return errProfileUnavailable
	}

	if asJSON {
		return writeJSON(cmd, profile)
	}
	rendered, err := listing.Profile(*profile)
	return writeRendered(cmd, rendered, err)
}

func readPhoto(path string) (*domain.FileUpload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if info.Size() > maxPhotoBytes {
		return nil, fmt.Errorf("photo %s is larger than %d MiB", path, maxPhotoBytes>>20)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}

	return &domain.FileUpload{Name: filepath.Base(path), Data: data}, nil
}
