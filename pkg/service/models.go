package service

import (
	"github.com/polyrpc/demoapi/pkg/resource"
)

// Stub prediction constants, matching the reference backend.
const (
	stubOutputPrefix   = "Processed: "
	stubOutputMaxChars = 50
	stubConfidence     = 0.95
	stubLatencyMs      = 42
)

// Predictor produces a prediction for a model that is present and
// loaded; the service has already checked both. Implementations must
// fill every PredictionResult field.
type Predictor interface {
	Predict(model resource.ModelInfo, req resource.PredictionRequest) (resource.PredictionResult, error)
}

// stubPredictor is the canned default: a truncated echo with fixed
// confidence and latency. Real inference replaces it via WithPredictor.
type stubPredictor struct{}

func (stubPredictor) Predict(_ resource.ModelInfo, req resource.PredictionRequest) (resource.PredictionResult, error) {
	return resource.PredictionResult{
		ModelName:        req.ModelName,
		InputText:        req.InputText,
		Output:           stubOutputPrefix + truncate(req.InputText, stubOutputMaxChars) + "...",
		Confidence:       stubConfidence,
		ProcessingTimeMs: stubLatencyMs,
	}, nil
}

// truncate limits s to max characters, counting runes so multi-byte
// input is not cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ListModels returns all known models in registration order.
func (s *Service) ListModels() []resource.ModelInfo {
	return s.store.Models.List()
}

// Predict runs the configured predictor against a named model. Fails
// with a not-found error when no model has that name and an unavailable
// error when the model is not loaded.
func (s *Service) Predict(req resource.PredictionRequest) (resource.PredictionResult, error) {
	if err := req.Validate().Err(); err != nil {
		return resource.PredictionResult{}, err
	}

	m, ok := s.store.Models.Find(req.ModelName)
	if !ok {
		return resource.PredictionResult{}, notFound("Model '%s' not found", req.ModelName)
	}
	if !m.Loaded {
		return resource.PredictionResult{}, unavailable("Model '%s' is not loaded", req.ModelName)
	}

	out, err := s.predictor.Predict(m, req)
	if err != nil {
		s.log.Error("prediction failed", "model", req.ModelName, "error", err)
		return resource.PredictionResult{}, err
	}
	s.log.Info("prediction served", "model", req.ModelName, "latencyMs", out.ProcessingTimeMs)
	return out, nil
}
