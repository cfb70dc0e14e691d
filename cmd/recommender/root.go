package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// newRootCmd constructs the command tree wired to a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "recommender",
		Short:         "Media recommendation wizard backed by a hosted text model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd.Flags().Changed)
		},
	}

	// Persistent flags override the config file and environment
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (.yaml, .yml, .json or .toml)")
	pf.StringVar(&a.region, "region", "", "AWS region (defaults REGION or us-east-1)")
	pf.StringVar(&a.modelID, "model-id", "", "Text model id (defaults RECOMMENDER_MODEL_ID or amazon.titan-text-lite-v1)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error|off (defaults RECOMMENDER_LOG_LEVEL or info)")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: console|json")

	root.AddCommand(newServeCmd(a), newPromptCmd(a), newAdminCmd(a), newOpenAPICmd())
	return root
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
