package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/shopmania/internal/display"
	"github.com/hammamikhairi/shopmania/internal/ingredient"
)

func newGenerateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <recipe>...",
		Short: "Print the shopping list for the named cook book recipes",
		Long: `Plan the named recipes, in order, and print the merged shopping list.
Recipe names ignore case; quote names that contain spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			session, err := a.engine.StartSession(ctx)
			if err != nil {
				return err
			}
			defer a.engine.Close(ctx, session.ID)

			for _, name := range args {
				if _, err := a.engine.AddToPlan(ctx, session.ID, name); err != nil {
					return err
				}
			}

			list, err := a.engine.Generate(ctx, session.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display.Table(list))
			return nil
		},
	}
}

func newCatalogCmd(opts *options) *cobra.Command {
	var show string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the cook book, or one recipe's ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			if show == "" {
				for _, name := range a.engine.CatalogNames(ctx) {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			r, err := a.engine.CatalogRecipe(ctx, show)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, r.Name)
			fmt.Fprintln(out, ingredient.Encode(r.Ingredients))
			if len(r.Ingredients) > 0 {
				fmt.Fprintln(out, display.Table(r.Ingredients))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&show, "show", "", "recipe whose ingredients to print")
	return cmd
}
