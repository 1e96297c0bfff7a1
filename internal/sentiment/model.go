package sentiment

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/inference"
)

// maxModelInput truncates text before sending it to the model, which caps
// input around 512 tokens.
const maxModelInput = 512

// ModelStrategy classifies via the pretrained three-class model and remaps
// its confidence into the per-label score bands so label and score stay
// consistent by construction: joyful in [0.3, 1.0], anxious in
// [-1.0, -0.3], neutral in (-0.3, 0.3).
type ModelStrategy struct {
	client inference.Classifier
}

func NewModelStrategy(client inference.Classifier) *ModelStrategy {
	return &ModelStrategy{client: client}
}

func (s *ModelStrategy) Name() string { return "model" }

func (s *ModelStrategy) Available() bool { return s.client != nil }

func (s *ModelStrategy) Classify(ctx context.Context, text string) (string, float64, error) {
	if len(text) > maxModelInput {
		cut := maxModelInput
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	res, err := s.client.Classify(ctx, text)
	if err != nil {
		return "", 0, err
	}

	label, score := remap(res.Label, res.Confidence)
	return label, score, nil
}

func remap(modelLabel string, confidence float64) (string, float64) {
	var label string
	switch strings.ToLower(modelLabel) {
	case "positive", "label_2":
		label = model.LabelJoyful
	case "negative", "label_0":
		label = model.LabelAnxious
	default:
		label = model.LabelNeutral
	}

	var score float64
	switch label {
	case model.LabelJoyful:
		score = 0.3 + confidence*0.7
	case model.LabelAnxious:
		score = -0.3 - confidence*0.7
	default:
		score = (confidence - 0.5) * 0.6
	}

	return label, round3(score)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
