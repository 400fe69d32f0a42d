// Package engine converts a small Markdown dialect (headings, unordered lists,
// paragraphs, bold and italic) into HTML, one line at a time.
//
// Block structure is tracked with two flags, one for an open <p> and one for
// an open <ul>. Inline markers are rewritten before a line is classified:
// "**x**" becomes <b>x</b> and "__x__" becomes <em>x</em>.
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'md2h.engine'.
func tracer() tracing.Trace {
	return tracing.Select("md2h.engine")
}
