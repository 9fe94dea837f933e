package resource

import (
	"github.com/polyrpc/demoapi/pkg/validation"
)

// ModelInfo describes an AI model known to the backend. Name is the
// unique lookup key.
type ModelInfo struct {
	Name          string  `json:"name" yaml:"name"`
	Version       string  `json:"version" yaml:"version"`
	Loaded        bool    `json:"loaded" yaml:"loaded"`
	MemoryUsageMB float64 `json:"memoryUsageMb" yaml:"memoryUsageMb"`
}

// PredictionRequest asks a named model to process input text.
type PredictionRequest struct {
	ModelName string `json:"modelName"`
	InputText string `json:"inputText"`
}

// Validate checks the request fields.
func (r *PredictionRequest) Validate() *validation.Result {
	res := validation.NewResult()
	if r.ModelName == "" {
		res.AddError(validation.NewRequiredError("modelName", validation.LocationBody))
	}
	return res
}

// PredictionResult is the output contract of a predictor. The shape is
// fixed; how output, confidence, and latency are computed is up to the
// predictor implementation.
type PredictionResult struct {
	ModelName        string  `json:"modelName"`
	InputText        string  `json:"inputText"`
	Output           string  `json:"output"`
	Confidence       float64 `json:"confidence"`
	ProcessingTimeMs int     `json:"processingTimeMs"`
}
