package model

import "time"

type CandidateKind int

const (
	CandidateReal CandidateKind = iota
	CandidateFallback
)

// Candidate is the result of one resolution attempt for a city: either a
// genuinely fetched post or a curated synthetic substitute. Exactly one
// variant per attempt; the fallback variant never carries author or URL.
type Candidate struct {
	Kind       CandidateKind
	Text       string
	Platform   string
	Author     string
	URL        string
	ObservedAt time.Time
}

func RealCandidate(text, platform, author, url string, observedAt time.Time) Candidate {
	return Candidate{
		Kind:       CandidateReal,
		Text:       text,
		Platform:   platform,
		Author:     author,
		URL:        url,
		ObservedAt: observedAt,
	}
}

func FallbackCandidate(text string) Candidate {
	return Candidate{Kind: CandidateFallback, Text: text}
}

func (c Candidate) IsFallback() bool {
	return c.Kind == CandidateFallback
}
