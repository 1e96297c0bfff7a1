package sentiment

import (
	"context"
	"log/slog"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
)

// Strategy is one way of classifying text. Strategies are tried in order;
// an unavailable or failing strategy passes control to the next one.
type Strategy interface {
	Name() string
	Available() bool
	Classify(ctx context.Context, text string) (label string, score float64, err error)
}

// Classifier runs an ordered capability chain over its strategies. It never
// returns an error: if every strategy is unavailable or fails, the text is
// neutral with score 0.
type Classifier struct {
	strategies []Strategy
}

func NewClassifier(strategies ...Strategy) *Classifier {
	return &Classifier{strategies: strategies}
}

func (c *Classifier) Classify(ctx context.Context, text string) (string, float64) {
	cleaned := Clean(text)
	if len(cleaned) < 3 {
		return model.LabelNeutral, 0.0
	}

	for _, s := range c.strategies {
		if !s.Available() {
			continue
		}
		label, score, err := s.Classify(ctx, cleaned)
		if err != nil {
			slog.Warn("classifier strategy failed, trying next", "strategy", s.Name(), "error", err)
			continue
		}
		return label, score
	}

	return model.LabelNeutral, 0.0
}
