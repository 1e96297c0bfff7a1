package llm

import "context"

// NarrativeInput carries the aggregate statistics and sample posts a
// narrative is generated from.
type NarrativeInput struct {
	City         string
	TotalPosts   int
	Positive     int
	Neutral      int
	Negative     int
	AverageScore float64
	SamplePosts  []string
}

type NarrativeClient interface {
	Narrate(ctx context.Context, input NarrativeInput) (string, error)
	ModelName() string
}
