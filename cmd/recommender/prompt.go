package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recommender/internal/catalog"
	"recommender/internal/manager"
	"recommender/internal/wizard"
)

func newPromptCmd(a *app) *cobra.Command {
	var p wizard.Preferences
	var invoke bool
	cmd := &cobra.Command{
		Use:     "prompt",
		Short:   "Print the recommendation prompt, optionally sending it to the model",
		Example: "  recommender prompt --type Movies --favorite Inception --genre Sci-Fi --mood Excited --invoke",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !invoke {
				out, err := wizard.BuildPrompt(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			cat := catalog.Default()
			if a.cfg.OptionsFile != "" {
				c, err := catalog.LoadFile(a.cfg.OptionsFile)
				if err != nil {
					return err
				}
				cat = c
			}
			t, err := a.titanClient(cmd.Context())
			if err != nil {
				return err
			}
			mgr := manager.NewWithConfig(manager.ManagerConfig{Generator: t, Catalog: cat, ModelID: t.ModelID(), Region: a.cfg.Region, Logger: &a.log})
			res, err := mgr.Recommend(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Prompt)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), res.Listing)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Type, "type", "", "Media type, e.g. Movies")
	f.StringVar(&p.Favorite, "favorite", "", "Favorite titles")
	f.StringVar(&p.Genre, "genre", "", "Genre, e.g. Sci-Fi")
	f.StringVar(&p.Mood, "mood", "", "Mood, e.g. Excited")
	f.BoolVar(&invoke, "invoke", false, "Send the prompt to the model and print its answer")
	return cmd
}
