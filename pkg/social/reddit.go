package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const redditBaseURL = "https://www.reddit.com"

// moodQualifiers narrows city searches towards posts about how people feel
// rather than listings, travel deals, and headlines.
const moodQualifiers = "(feel OR feeling OR mood OR living OR today)"

type RedditClient struct {
	userAgent  string
	baseURL    string
	httpClient *http.Client
}

func NewRedditClient(userAgent string) *RedditClient {
	if userAgent == "" {
		userAgent = "EarthPulse/1.0"
	}
	return &RedditClient{
		userAgent:  userAgent,
		baseURL:    redditBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *RedditClient) Name() string {
	return "reddit"
}

func (c *RedditClient) Search(ctx context.Context, city string, limit int) ([]Post, error) {
	// Search on the city proper, not the "City, Country" display name.
	cityTerm := city
	if i := strings.Index(city, ","); i > 0 {
		cityTerm = city[:i]
	}
	query := fmt.Sprintf("%q %s", cityTerm, moodQualifiers)

	endpoint := fmt.Sprintf(
		"%s/search.json?q=%s&sort=new&t=day&limit=%d",
		c.baseURL, url.QueryEscape(query), limit,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("reddit request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("reddit search: %w", ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit search: unexpected status %d", resp.StatusCode)
	}

	var raw redditListing
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reddit decode: %w", err)
	}

	posts := make([]Post, 0, len(raw.Data.Children))
	for _, child := range raw.Data.Children {
		item := child.Data

		text := item.Title
		if item.SelfText != "" {
			text += " " + item.SelfText
		}

		posts = append(posts, Post{
			ID:        item.ID,
			Text:      text,
			Platform:  c.Name(),
			Author:    item.Author,
			URL:       c.baseURL + item.Permalink,
			CreatedAt: time.Unix(int64(item.CreatedUTC), 0).UTC(),
		})
	}

	return posts, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	Author     string  `json:"author"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}
