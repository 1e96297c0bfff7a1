package llm

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("祭", 200)

	got := truncate(long, maxSampleChars)

	if len(got) > maxSampleChars+len("...") {
		t.Errorf("truncated sample too long: %d", len(got))
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a rune")
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}

	short := "a short sample"
	if truncate(short, maxSampleChars) != short {
		t.Error("short samples must pass through unchanged")
	}
}

func TestBuildPrompt(t *testing.T) {
	in := NarrativeInput{
		City:         "Toronto, Canada",
		TotalPosts:   20,
		Positive:     10,
		Neutral:      6,
		Negative:     4,
		AverageScore: 0.215,
		SamplePosts:  []string{"The waterfront was packed today", "Transit delays again this morning"},
	}

	got := buildPrompt(in)

	for _, want := range []string{
		"20 recent social media posts",
		"Toronto, Canada",
		"50.0% positive",
		"30.0% neutral",
		"20.0% negative",
		"0.215",
		"The waterfront was packed today",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildPromptEmptyStats(t *testing.T) {
	got := buildPrompt(NarrativeInput{City: "Nowhere"})
	if !strings.Contains(got, "0.0% positive") {
		t.Errorf("expected zero distribution, got:\n%s", got)
	}
}

func TestCleanNarrative(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "The city feels calm tonight.",
			want:  "The city feels calm tonight.",
		},
		{
			name:  "strips sentinel tokens",
			input: "<s>The city feels calm tonight.</s>",
			want:  "The city feels calm tonight.",
		},
		{
			name:  "strips instruction brackets",
			input: "[INST]The city feels calm tonight.[/INST]",
			want:  "The city feels calm tonight.",
		},
		{
			name:  "collapses whitespace",
			input: "The  city\n\nfeels calm.",
			want:  "The city feels calm.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanNarrative(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
