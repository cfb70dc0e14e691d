// Package admin forwards model-management calls to the Bedrock control plane.
// Each call logs its input, sends exactly one request and returns the SDK
// output unchanged. Errors are not translated.
package admin

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// API is the subset of *bedrock.Client used here.
type API interface {
	CreateModelCustomizationJob(ctx context.Context, params *bedrock.CreateModelCustomizationJobInput, optFns ...func(*bedrock.Options)) (*bedrock.CreateModelCustomizationJobOutput, error)
	GetModelCustomizationJob(ctx context.Context, params *bedrock.GetModelCustomizationJobInput, optFns ...func(*bedrock.Options)) (*bedrock.GetModelCustomizationJobOutput, error)
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
}

const (
	opCreateJob = "create_model_customization_job"
	opGetJob    = "get_model_customization_job"
	opListFMs   = "list_foundation_models"
)

var callsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "recommender",
		Subsystem: "admin",
		Name:      "calls_total",
		Help:      "Model-management calls forwarded to the hosted service",
	},
	[]string{"op", "outcome"},
)

func init() {
	prometheus.MustRegister(callsTotal)
}

// Client wraps an API with debug logging.
type Client struct {
	api API
	log zerolog.Logger
}

// New returns a Client. Pass zerolog.Nop() to silence logging.
func New(api API, log zerolog.Logger) *Client {
	return &Client{api: api, log: log.With().Str("component", "admin").Logger()}
}

// CreateModelCustomizationJob starts a fine-tuning job.
func (c *Client) CreateModelCustomizationJob(ctx context.Context, params *bedrock.CreateModelCustomizationJobInput) (*bedrock.CreateModelCustomizationJobOutput, error) {
	c.log.Debug().Interface("params", params).Msg(opCreateJob)
	res, err := c.api.CreateModelCustomizationJob(ctx, params)
	count(opCreateJob, err)
	if err != nil {
		return res, err
	}
	c.log.Debug().Msg("Successfully create model customization job")
	c.log.Debug().Interface("result", res).Msg(opCreateJob)
	return res, nil
}

// GetModelCustomizationJob describes a fine-tuning job.
func (c *Client) GetModelCustomizationJob(ctx context.Context, params *bedrock.GetModelCustomizationJobInput) (*bedrock.GetModelCustomizationJobOutput, error) {
	c.log.Debug().Interface("params", params).Msg(opGetJob)
	res, err := c.api.GetModelCustomizationJob(ctx, params)
	count(opGetJob, err)
	if err != nil {
		return res, err
	}
	c.log.Debug().Msg("Successfully get model customization job")
	c.log.Debug().Interface("result", res).Msg(opGetJob)
	return res, nil
}

// ListFoundationModels lists the foundation models available in the region.
func (c *Client) ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput) (*bedrock.ListFoundationModelsOutput, error) {
	c.log.Debug().Interface("params", params).Msg(opListFMs)
	res, err := c.api.ListFoundationModels(ctx, params)
	count(opListFMs, err)
	if err != nil {
		return res, err
	}
	c.log.Debug().Msg("Successfully list foundation models")
	c.log.Debug().Interface("result", res).Msg(opListFMs)
	return res, nil
}

func count(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	callsTotal.WithLabelValues(op, outcome).Inc()
}
