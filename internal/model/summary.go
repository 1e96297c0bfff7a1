package model

import "time"

type SummaryStats struct {
	TotalPosts   int
	Positive     int
	Neutral      int
	Negative     int
	AverageScore float64
}

// CitySummary is the cached result of one on-demand deep fetch and
// narrative generation for a single city.
type CitySummary struct {
	City        string
	Narrative   string
	Stats       SummaryStats
	SamplePosts []string
	GeneratedAt time.Time
}
