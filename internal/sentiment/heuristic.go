package sentiment

import (
	"context"
	"strings"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
)

var positiveWords = []string{
	"happy", "joy", "joyful", "excited", "love", "great", "amazing", "wonderful",
	"good", "best", "awesome", "perfect", "beautiful", "grateful", "thanks",
	"glad", "lovely", "celebrating", "success", "win", "won",
	"congratulations", "fantastic", "excellent", "brilliant", "cool", "nice",
}

var negativeWords = []string{
	"sad", "angry", "hate", "terrible", "awful", "bad", "worst", "anxious",
	"stress", "stressed", "worried", "worry", "concern", "concerned", "problem",
	"broke", "broken", "rejected", "rejection", "frustrated", "frustration",
	"disappointed", "disappointing", "upset", "annoyed", "creep", "creepy",
	"scared", "fear", "afraid", "hurt", "pain", "painful", "horrible",
}

// HeuristicStrategy is the deterministic keyword-weighted fallback used
// when the model is unavailable. It produces scores inside the same bands
// as the model path.
type HeuristicStrategy struct{}

func NewHeuristicStrategy() *HeuristicStrategy { return &HeuristicStrategy{} }

func (s *HeuristicStrategy) Name() string { return "heuristic" }

func (s *HeuristicStrategy) Available() bool { return true }

func (s *HeuristicStrategy) Classify(_ context.Context, text string) (string, float64, error) {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		score := 0.4 + float64(pos)*0.15
		if score > 0.9 {
			score = 0.9
		}
		return model.LabelJoyful, score, nil
	case neg > pos:
		score := -0.4 - float64(neg)*0.15
		if score < -0.9 {
			score = -0.9
		}
		return model.LabelAnxious, score, nil
	default:
		return model.LabelNeutral, 0.0, nil
	}
}
