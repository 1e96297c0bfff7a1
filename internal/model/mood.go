package model

import "time"

const (
	LabelJoyful  = "joyful"
	LabelNeutral = "neutral"
	LabelAnxious = "anxious"
)

// City is immutable reference data loaded once at startup.
type City struct {
	Name   string
	Lat    float64
	Lng    float64
	Region string
}

// MoodPoint is one city's current sentiment snapshot. The aggregator
// overwrites it in place each refresh cycle; nothing else mutates it.
type MoodPoint struct {
	CityName   string    `bson:"city_name"`
	Lat        float64   `bson:"lat"`
	Lng        float64   `bson:"lng"`
	Label      string    `bson:"label"`
	Score      float64   `bson:"score"`
	Source     string    `bson:"source"`
	Text       string    `bson:"text,omitempty"`
	PostAuthor string    `bson:"post_author,omitempty"`
	PostURL    string    `bson:"post_url,omitempty"`
	IsFallback bool      `bson:"is_fallback"`
	Timestamp  time.Time `bson:"timestamp"`
}
