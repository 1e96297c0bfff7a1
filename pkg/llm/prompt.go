package llm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const systemPrompt = `You are an empathetic AI that analyzes social media sentiment to understand how people feel in different cities. Your summaries should be insightful, human, and narrative-driven. Focus on the lived experiences and emotions of city residents based on their posts. Avoid being overly statistical - instead, paint a picture of the city's emotional atmosphere. Be specific about what's making people happy, anxious, or neutral.`

const maxSampleChars = 200

func buildPrompt(in NarrativeInput) string {
	pct := func(n int) float64 {
		if in.TotalPosts == 0 {
			return 0
		}
		return float64(n) / float64(in.TotalPosts) * 100
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"Analyze sentiment from %d recent social media posts discussing %s. ",
		in.TotalPosts, in.City,
	)
	fmt.Fprintf(&sb,
		"Sentiment distribution: %.1f%% positive, %.1f%% neutral, %.1f%% negative. ",
		pct(in.Positive), pct(in.Neutral), pct(in.Negative),
	)
	fmt.Fprintf(&sb, "Average sentiment score: %.3f. ", in.AverageScore)
	sb.WriteString(
		"Based on these discussions, write a natural, human-readable summary about the emotional climate " +
			"and current mood in " + in.City + ". Focus on what people are experiencing and feeling in the city. " +
			"Mention key themes like social life, infrastructure, work, relationships, or community issues " +
			"if the sentiment suggests these. Write 4-6 sentences in a narrative style. " +
			"Don't just recite statistics - tell a story about the city's current mood.",
	)

	if len(in.SamplePosts) > 0 {
		sb.WriteString("\n\nSample posts:\n")
		for i, post := range in.SamplePosts {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, truncate(post, maxSampleChars)))
		}
	}

	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

var bracketToken = regexp.MustCompile(`\[/?[A-Z_]+\]`)

// cleanNarrative strips instruction-token artifacts some models leak into
// their output.
func cleanNarrative(text string) string {
	for _, token := range []string{
		"<s>", "</s>",
		"<|im_start|>", "<|im_end|>",
		"<|assistant|>", "<|user|>",
	} {
		text = strings.ReplaceAll(text, token, "")
	}
	text = bracketToken.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
