package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Defaults applied when corresponding Config fields are unset.
const (
	DefaultModelID       = "amazon.titan-text-lite-v1"
	DefaultMaxTokenCount = 300
	DefaultTopP          = 0.9
	ContentTypeJSON      = "application/json"
)

// ErrNoResults is returned when the model response carries no results.
var ErrNoResults = errors.New("model response has no results")

// RuntimeAPI is the subset of *bedrockruntime.Client used here.
type RuntimeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Config holds the generation parameters. Temperature 0 is a valid setting.
type Config struct {
	ModelID       string
	MaxTokenCount int
	StopSequences []string
	Temperature   float64
	TopP          float64
	// Timeout bounds a single InvokeModel call. Zero leaves it to the SDK and caller context.
	Timeout time.Duration
}

// Titan calls an Amazon Titan text model through the Bedrock runtime.
type Titan struct {
	api RuntimeAPI
	cfg Config
}

// NewTitan returns a Titan client with defaults applied to cfg.
func NewTitan(api RuntimeAPI, cfg Config) *Titan {
	if cfg.ModelID == "" {
		cfg.ModelID = DefaultModelID
	}
	if cfg.MaxTokenCount <= 0 {
		cfg.MaxTokenCount = DefaultMaxTokenCount
	}
	if cfg.TopP <= 0 {
		cfg.TopP = DefaultTopP
	}
	cfg.StopSequences = append([]string{}, cfg.StopSequences...)
	return &Titan{api: api, cfg: cfg}
}

// ModelID returns the configured model identifier.
func (t *Titan) ModelID() string { return t.cfg.ModelID }

// NewRequest builds the InvokeModel request for prompt.
func (t *Titan) NewRequest(prompt string) InferenceRequest {
	return InferenceRequest{
		ModelID:     t.cfg.ModelID,
		ContentType: ContentTypeJSON,
		Accept:      ContentTypeJSON,
		Body: RequestBody{
			InputText: prompt,
			TextGenerationConfig: TextGenerationConfig{
				MaxTokenCount: t.cfg.MaxTokenCount,
				StopSequences: append([]string{}, t.cfg.StopSequences...),
				Temperature:   t.cfg.Temperature,
				TopP:          t.cfg.TopP,
			},
		},
	}
}

// Invoke sends req once and decodes the response body. No retry is attempted here.
func (t *Titan) Invoke(ctx context.Context, req InferenceRequest) (InferenceResponse, error) {
	body, err := json.Marshal(req.Body)
	if err != nil {
		return InferenceResponse{}, fmt.Errorf("encode request body: %w", err)
	}
	if t.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.Timeout)
		defer cancel()
	}
	out, err := t.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(req.ModelID),
		ContentType: aws.String(req.ContentType),
		Accept:      aws.String(req.Accept),
		Body:        body,
	})
	if err != nil {
		return InferenceResponse{}, fmt.Errorf("invoke model %s: %w", req.ModelID, err)
	}
	if out == nil {
		return InferenceResponse{}, fmt.Errorf("invoke model %s: empty output", req.ModelID)
	}
	return DecodeResponse(out.Body)
}

// Generate builds a request for prompt, invokes the model and returns the first output text.
func (t *Titan) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := t.Invoke(ctx, t.NewRequest(prompt))
	if err != nil {
		return "", err
	}
	return resp.OutputText()
}

// DecodeResponse parses a UTF-8 JSON InvokeModel body.
func DecodeResponse(b []byte) (InferenceResponse, error) {
	var resp InferenceResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return InferenceResponse{}, fmt.Errorf("decode response body: %w", err)
	}
	return resp, nil
}
