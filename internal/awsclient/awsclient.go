// Package awsclient builds the Bedrock SDK clients from the default AWS
// credential chain and a region.
package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// Clients bundles the runtime (inference) and control-plane (model management) clients.
type Clients struct {
	Region  string
	Runtime *bedrockruntime.Client
	Control *bedrock.Client
}

// LoadConfig resolves the shared AWS configuration for region.
func LoadConfig(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		region = DefaultRegion
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// New builds both Bedrock clients for region.
func New(ctx context.Context, region string) (*Clients, error) {
	cfg, err := LoadConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return &Clients{
		Region:  cfg.Region,
		Runtime: bedrockruntime.NewFromConfig(cfg),
		Control: bedrock.NewFromConfig(cfg),
	}, nil
}
