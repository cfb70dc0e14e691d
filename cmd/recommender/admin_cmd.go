package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/spf13/cobra"

	"recommender/internal/admin"
)

func newAdminCmd(a *app) *cobra.Command {
	adminCmd := &cobra.Command{Use: "admin", Short: "Model management pass-through calls", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("admin requires a subcommand: models|jobs")
	}}

	// models
	modelsCmd := &cobra.Command{Use: "models", Short: "Foundation models", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("admin models requires a subcommand: list")
	}}
	var provider, customization, modality, inference string
	modelsList := &cobra.Command{Use: "list", Short: "List foundation models", Example: "  recommender admin models list --provider Amazon --output-modality TEXT", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		c, err := a.adminClient(cmd.Context())
		if err != nil {
			return err
		}
		in := &bedrock.ListFoundationModelsInput{
			ByCustomizationType: bedrocktypes.ModelCustomization(customization),
			ByOutputModality:    bedrocktypes.ModelModality(modality),
			ByInferenceType:     bedrocktypes.InferenceType(inference),
		}
		if provider != "" {
			in.ByProvider = aws.String(provider)
		}
		out, err := c.ListFoundationModels(cmd.Context(), in)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}}
	modelsList.Flags().StringVar(&provider, "provider", "", "Filter by provider, e.g. Amazon")
	modelsList.Flags().StringVar(&customization, "customization-type", "", "FINE_TUNING|CONTINUED_PRE_TRAINING|DISTILLATION")
	modelsList.Flags().StringVar(&modality, "output-modality", "", "TEXT|IMAGE|EMBEDDING")
	modelsList.Flags().StringVar(&inference, "inference-type", "", "ON_DEMAND|PROVISIONED")
	modelsCmd.AddCommand(modelsList)

	// jobs
	jobsCmd := &cobra.Command{Use: "jobs", Short: "Model customization jobs", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("admin jobs requires a subcommand: get|create")
	}}
	jobsGet := &cobra.Command{Use: "get <job-id>", Short: "Get a customization job by name or ARN", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		c, err := a.adminClient(cmd.Context())
		if err != nil {
			return err
		}
		out, err := c.GetModelCustomizationJob(cmd.Context(), &bedrock.GetModelCustomizationJobInput{JobIdentifier: aws.String(args[0])})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}}
	var inputFile string
	jobsCreate := &cobra.Command{Use: "create", Short: "Create a customization job from a JSON input file", Example: "  recommender admin jobs create --file job.json", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", inputFile, err)
		}
		in, err := admin.ParseCreateJobInput(b)
		if err != nil {
			return fmt.Errorf("parse %s: %w", inputFile, err)
		}
		c, err := a.adminClient(cmd.Context())
		if err != nil {
			return err
		}
		out, err := c.CreateModelCustomizationJob(cmd.Context(), in)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}}
	jobsCreate.Flags().StringVar(&inputFile, "file", "", "JSON file with the CreateModelCustomizationJob input (SDK field names)")
	_ = jobsCreate.MarkFlagRequired("file")
	jobsCmd.AddCommand(jobsGet, jobsCreate)

	adminCmd.AddCommand(modelsCmd, jobsCmd)
	return adminCmd
}
