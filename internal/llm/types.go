package llm

// TextGenerationConfig mirrors the Titan text generation parameters.
// All fields are always encoded: temperature 0 and an empty stop list are meaningful.
type TextGenerationConfig struct {
	MaxTokenCount int      `json:"maxTokenCount"`
	StopSequences []string `json:"stopSequences"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"topP"`
}

// RequestBody is the JSON document sent as the InvokeModel body.
type RequestBody struct {
	InputText            string               `json:"inputText"`
	TextGenerationConfig TextGenerationConfig `json:"textGenerationConfig"`
}

// InferenceRequest is one InvokeModel call. Built fresh per submission.
type InferenceRequest struct {
	ModelID     string
	ContentType string
	Accept      string
	Body        RequestBody
}

// Result is a single generation in an InferenceResponse.
type Result struct {
	TokenCount       int    `json:"tokenCount,omitempty"`
	OutputText       string `json:"outputText"`
	CompletionReason string `json:"completionReason,omitempty"`
}

// InferenceResponse is the decoded InvokeModel body.
type InferenceResponse struct {
	InputTextTokenCount int      `json:"inputTextTokenCount,omitempty"`
	Results             []Result `json:"results"`
}

// OutputText returns the first result's text.
func (r InferenceResponse) OutputText() (string, error) {
	if len(r.Results) == 0 {
		return "", ErrNoResults
	}
	return r.Results[0].OutputText, nil
}
