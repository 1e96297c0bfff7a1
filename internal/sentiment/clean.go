package sentiment

import (
	"regexp"
	"strings"
)

var (
	urlPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	deletionPattern = regexp.MustCompile(`\[deleted\]|\[removed\]`)
	markdownPattern = regexp.MustCompile(`\*\*|__|~~`)
	allowedPattern  = regexp.MustCompile(`[^\w\s.,!?'"` + emojiAllowList + `-]`)
)

// emojiAllowList keeps a handful of strongly signalling emoji that the
// sentiment model was trained on.
const emojiAllowList = "💔😅👋💯❤️😊🎉🔥💪😢😡"

// Clean strips URLs, deletion markers, and markdown emphasis from a post
// before classification, preserving basic punctuation and allow-listed
// emoji.
func Clean(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = deletionPattern.ReplaceAllString(text, "")
	text = markdownPattern.ReplaceAllString(text, "")
	text = allowedPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
