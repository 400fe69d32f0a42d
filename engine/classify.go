package engine

import (
	"fmt"
	"strings"
)

// Kind is the block category of a single input line.
type Kind int

const (
	KindBlank Kind = iota
	KindHeading
	KindListItem
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list-item"
	case KindParagraph:
		return "paragraph"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Line is a classified input line. Level is only set for headings.
type Line struct {
	Kind    Kind
	Level   int
	Content string
}

const (
	headingCutset  = "# \n"
	listItemCutset = "- \n"
)

// Classify determines the category of an (already substituted) line.
//
// The heading level counts every '#' in the line, not only the leading run,
// so "# A # B #" is a level 3 heading with content "A # B".
func Classify(line string) Line {
	switch {
	case strings.HasPrefix(line, "#"):
		return Line{
			Kind:    KindHeading,
			Level:   strings.Count(line, "#"),
			Content: strings.Trim(line, headingCutset),
		}
	case strings.HasPrefix(line, "- "):
		return Line{Kind: KindListItem, Content: strings.Trim(line, listItemCutset)}
	}
	if content := strings.TrimSpace(line); content != "" {
		return Line{Kind: KindParagraph, Content: content}
	}
	return Line{Kind: KindBlank}
}
