package handler

type MoodPointResponse struct {
	CityName   string  `json:"city_name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Source     string  `json:"source"`
	Text       string  `json:"text,omitempty"`
	PostAuthor string  `json:"post_author,omitempty"`
	PostURL    string  `json:"post_url,omitempty"`
	IsFallback bool    `json:"is_fallback"`
	Timestamp  string  `json:"timestamp"`
}

type MoodsResponse struct {
	Moods []MoodPointResponse `json:"moods"`
	Count int                 `json:"count"`
}

type RefreshResponse struct {
	Message   string `json:"message"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

type StatisticsResponse struct {
	TotalPosts   int     `json:"total_posts"`
	Positive     int     `json:"positive"`
	Neutral      int     `json:"neutral"`
	Negative     int     `json:"negative"`
	AverageScore float64 `json:"average_score"`
}

type CitySummaryResponse struct {
	City        string             `json:"city"`
	Summary     string             `json:"summary"`
	Statistics  StatisticsResponse `json:"statistics"`
	SamplePosts []string           `json:"sample_posts"`
	Timestamp   string             `json:"timestamp"`
}

type StoreStatsResponse struct {
	TotalPoints  int            `json:"total_points"`
	BySource     map[string]int `json:"by_source"`
	ByLabel      map[string]int `json:"by_label"`
	AverageScore float64        `json:"average_score"`
}
