package social

import (
	"hash/fnv"
	"time"
)

// fallbackTexts is the curated pool of synthetic mood snippets used when no
// real post can be fetched for a city.
var fallbackTexts = []string{
	"Feeling great about the new project! Excited to see where this goes.",
	"Stressed about the deadline tomorrow. Need to finish everything.",
	"Beautiful weather today. Perfect for a walk in the park.",
	"Anxious about the upcoming exam. Hope I studied enough.",
	"Just got promoted! This is amazing news!",
	"Traffic is terrible today. Going to be late for the meeting.",
	"Love spending time with family. These moments are precious.",
	"Worried about climate change. We need to act now.",
	"Grateful for all the support from friends and colleagues.",
	"Frustrated with the slow internet connection.",
	"Celebrating a small victory today. Every step counts!",
	"Feeling overwhelmed with all the tasks on my plate.",
	"Amazing sunset tonight. Nature never fails to amaze.",
	"Concerned about the future. Hoping for the best.",
	"Thrilled about the concert next week! Can't wait!",
}

// FallbackText picks a synthetic snippet for a city. The pick is
// deterministic within one clock hour so tests are stable while
// consecutive refresh cycles still rotate texts over time.
func FallbackText(city string, now time.Time) string {
	h := fnv.New32a()
	h.Write([]byte(city))
	idx := (int(h.Sum32()%uint32(len(fallbackTexts))) + now.Hour()) % len(fallbackTexts)
	return fallbackTexts[idx]
}
