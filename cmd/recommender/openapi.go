package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swaggo/swag"

	"recommender/internal/apidocs"
)

func newOpenAPICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI (Swagger 2.0) document for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := swag.ReadDoc(apidocs.SwaggerInfo.InstanceName())
			if err != nil {
				return fmt.Errorf("read api doc: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}
