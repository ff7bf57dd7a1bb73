package cmd

import (
	"context"

	"github.com/bnema/coach-cli/internal/adapters/render/listing"
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/remote"
	"github.com/spf13/cobra"
)

// catalogEntity describes one read-only collection exposed as `<name> list` and `<name> show <id>`.
type catalogEntity[T any] struct {
	name       string
	short      string
	listLabel  string
	showLabel  string
	store      func(*app) *remote.Store[T, remote.NoInput]
	renderList func([]T) (string, error)
	renderOne  func(T) (string, error)
}

func newCatalogCmd[T any](app *app, entity catalogEntity[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   entity.name,
		Short: entity.short,
	}

	cmd.AddCommand(newCatalogListCmd(app, entity), newCatalogShowCmd(app, entity))

	return cmd
}

func newCatalogListCmd[T any](app *app, entity catalogEntity[T]) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + entity.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := entity.store(app)
			err := fetch(cmd, entity.listLabel, asJSON, func(ctx context.Context) error {
				return resultError(store.FetchAll(ctx))
			})
			if err != nil {
				return err
			}

			items := store.Snapshot().Items
			if asJSON {
				return writeJSON(cmd, nonNil(items))
			}
			rendered, err := entity.renderList(items)
			return writeRendered(cmd, rendered, err)
		},
	}
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newCatalogShowCmd[T any](app *app, entity catalogEntity[T]) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one of the " + entity.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], entity.name)
			if err != nil {
				return err
			}

			var res remote.Result[T]
			err = fetch(cmd, entity.showLabel, asJSON, func(ctx context.Context) error {
				res = entity.store(app).FetchByID(ctx, id)
				return resultError(res)
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, res.Value)
			}
			rendered, err := entity.renderOne(res.Value)
			return writeRendered(cmd, rendered, err)
		},
	}
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newResourcesCmd(ap *app) *cobra.Command {
	return newCatalogCmd(ap, catalogEntity[domain.Resource]{
		name:       "resources",
		short:      "Browse coaching resources (PDF, audio, video)",
		listLabel:  "Chargement des ressources...",
		showLabel:  "Chargement de la ressource...",
		store:      func(a *app) *remote.Store[domain.Resource, remote.NoInput] { return a.state.Catalog.Resources },
		renderList: listing.Resources,
		renderOne:  listing.Resource,
	})
}

func newPlansCmd(ap *app) *cobra.Command {
	return newCatalogCmd(ap, catalogEntity[domain.Plan]{
		name:       "plans",
		short:      "Browse coaching programmes",
		listLabel:  "Chargement des programmes...",
		showLabel:  "Chargement du programme...",
		store:      func(a *app) *remote.Store[domain.Plan, remote.NoInput] { return a.state.Catalog.Plans },
		renderList: listing.Plans,
		renderOne:  listing.Plan,
	})
}
