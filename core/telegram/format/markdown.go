package format

import (
	"regexp"
)

var mdV1Specials = regexp.MustCompile("([_*\\[`])")

// EscapeMarkdown escapes special characters for Telegram Markdown (V1).
func EscapeMarkdown(text string) string {
	return mdV1Specials.ReplaceAllString(text, `\$1`)
}
