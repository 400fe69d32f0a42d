package engine

import "regexp"

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`__(.*?)__`)
)

// Substitute rewrites the inline markers of a single line.
// "**" pairs are replaced first, then "__" pairs on the result.
func Substitute(line string) string {
	line = boldPattern.ReplaceAllString(line, "<b>${1}</b>")
	return italicPattern.ReplaceAllString(line, "<em>${1}</em>")
}
