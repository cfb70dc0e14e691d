package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
)

// CreateJobRequest is the JSON form of bedrock.CreateModelCustomizationJobInput,
// keyed by SDK field names. Union fields are objects with exactly one member
// set, keyed by the member name:
//
//	"CustomizationConfig": {"DistillationConfig": {"TeacherModelConfig": {...}}}
//	"TrainingDataConfig": {"InvocationLogsConfig": {"InvocationLogSource": {"S3Uri": "s3://..."}}}
type CreateJobRequest struct {
	bedrock.CreateModelCustomizationJobInput

	// Shadow the embedded union-bearing fields.
	CustomizationConfig *customizationConfigJSON
	TrainingDataConfig  *trainingDataConfigJSON
}

type customizationConfigJSON struct {
	DistillationConfig *bedrocktypes.DistillationConfig
}

type trainingDataConfigJSON struct {
	S3Uri                *string
	InvocationLogsConfig *invocationLogsConfigJSON
}

type invocationLogsConfigJSON struct {
	InvocationLogSource    *invocationLogSourceJSON
	RequestMetadataFilters *requestMetadataFiltersJSON
	UsePromptResponse      bool
}

type invocationLogSourceJSON struct {
	S3Uri *string
}

type requestMetadataFiltersJSON struct {
	Equals    map[string]string
	NotEquals map[string]string
	AndAll    []bedrocktypes.RequestMetadataBaseFilters
	OrAll     []bedrocktypes.RequestMetadataBaseFilters
}

// ErrInvalidJobInput wraps decoding and union-shape failures.
var ErrInvalidJobInput = errors.New("invalid customization job input")

// DecodeCreateJobInput reads a CreateJobRequest from r and converts it to the SDK input.
func DecodeCreateJobInput(r io.Reader) (*bedrock.CreateModelCustomizationJobInput, error) {
	var req CreateJobRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJobInput, err)
	}
	return req.Input()
}

// ParseCreateJobInput is DecodeCreateJobInput over a byte slice.
func ParseCreateJobInput(b []byte) (*bedrock.CreateModelCustomizationJobInput, error) {
	return DecodeCreateJobInput(bytes.NewReader(b))
}

// Input builds the SDK input, resolving union members.
func (r CreateJobRequest) Input() (*bedrock.CreateModelCustomizationJobInput, error) {
	in := r.CreateModelCustomizationJobInput
	if r.CustomizationConfig != nil {
		if r.CustomizationConfig.DistillationConfig == nil {
			return nil, fmt.Errorf("%w: CustomizationConfig needs DistillationConfig", ErrInvalidJobInput)
		}
		in.CustomizationConfig = &bedrocktypes.CustomizationConfigMemberDistillationConfig{Value: *r.CustomizationConfig.DistillationConfig}
	}
	if r.TrainingDataConfig != nil {
		tdc, err := r.TrainingDataConfig.sdk()
		if err != nil {
			return nil, err
		}
		in.TrainingDataConfig = tdc
	}
	return &in, nil
}

func (t trainingDataConfigJSON) sdk() (*bedrocktypes.TrainingDataConfig, error) {
	out := &bedrocktypes.TrainingDataConfig{S3Uri: t.S3Uri}
	if t.InvocationLogsConfig == nil {
		return out, nil
	}
	lc := t.InvocationLogsConfig
	ilc := &bedrocktypes.InvocationLogsConfig{UsePromptResponse: lc.UsePromptResponse}
	if lc.InvocationLogSource != nil {
		if lc.InvocationLogSource.S3Uri == nil {
			return nil, fmt.Errorf("%w: InvocationLogSource needs S3Uri", ErrInvalidJobInput)
		}
		ilc.InvocationLogSource = &bedrocktypes.InvocationLogSourceMemberS3Uri{Value: *lc.InvocationLogSource.S3Uri}
	}
	if f := lc.RequestMetadataFilters; f != nil {
		var members []bedrocktypes.RequestMetadataFilters
		if f.Equals != nil {
			members = append(members, &bedrocktypes.RequestMetadataFiltersMemberEquals{Value: f.Equals})
		}
		if f.NotEquals != nil {
			members = append(members, &bedrocktypes.RequestMetadataFiltersMemberNotEquals{Value: f.NotEquals})
		}
		if f.AndAll != nil {
			members = append(members, &bedrocktypes.RequestMetadataFiltersMemberAndAll{Value: f.AndAll})
		}
		if f.OrAll != nil {
			members = append(members, &bedrocktypes.RequestMetadataFiltersMemberOrAll{Value: f.OrAll})
		}
		if len(members) != 1 {
			return nil, fmt.Errorf("%w: RequestMetadataFilters needs exactly one of Equals, NotEquals, AndAll, OrAll", ErrInvalidJobInput)
		}
		ilc.RequestMetadataFilters = members[0]
	}
	out.InvocationLogsConfig = ilc
	return out, nil
}
