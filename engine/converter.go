package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Converter turns Markdown lines into HTML fragments. A Converter is good
// for a single document; create a new one per conversion.
type Converter struct {
	opts Options

	inParagraph bool
	inList      bool

	started bool
	lines   int

	buf *bufio.Writer
}

func NewConverter(w io.Writer, opts Options) *Converter {
	return &Converter{opts: opts, buf: bufio.NewWriter(w)}
}

type TemplateParams struct {
	Title     string
	LineCount int
}

func (c *Converter) params() TemplateParams {
	return TemplateParams{Title: c.opts.Title, LineCount: c.lines}
}

func (c *Converter) writeTemplate(name, text string) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return err
	}
	return tmpl.Execute(c.buf, c.params())
}

// start writes the document header once, if the output is standalone.
func (c *Converter) start() error {
	if c.started {
		return nil
	}
	c.started = true
	if !c.opts.Standalone {
		return nil
	}
	return c.writeTemplate("h", HtmlHeader)
}

func (c *Converter) openParagraph() {
	if !c.inParagraph {
		c.inParagraph = true
		c.buf.WriteString("<p>\n")
	}
}

func (c *Converter) closeParagraph() {
	if c.inParagraph {
		c.inParagraph = false
		c.buf.WriteString("</p>\n")
	}
}

func (c *Converter) openList() {
	if !c.inList {
		c.closeParagraph()
		c.inList = true
		c.buf.WriteString("<ul>\n")
	}
}

func (c *Converter) closeList() {
	if c.inList {
		c.inList = false
		c.buf.WriteString("</ul>\n")
	}
}

// ConvertLine processes one raw input line, including its trailing newline
// if it has one.
func (c *Converter) ConvertLine(line string) {
	c.start()
	c.lines++

	l := Classify(Substitute(line))
	tracer().Debugf("line %d: %s (p=%v ul=%v)", c.lines, l.Kind, c.inParagraph, c.inList)

	switch l.Kind {
	case KindHeading:
		c.closeParagraph()
		c.closeList()
		fmt.Fprintf(c.buf, "<h%d>%s</h%d>\n", l.Level, l.Content, l.Level)
	case KindListItem:
		c.openList()
		c.buf.WriteString("    <li>")
		c.buf.WriteString(l.Content)
		c.buf.WriteString("</li>\n")
	case KindParagraph:
		if c.opts.StrictBlocks {
			c.closeList()
		}
		// An open list is only closed once the paragraph is already open,
		// so text right after a list item lands inside the <ul>.
		if !c.inParagraph {
			c.openParagraph()
		} else {
			c.closeList()
		}
		c.buf.WriteString(l.Content)
		c.buf.WriteByte('\n')
	default:
		c.closeParagraph()
		c.closeList()
	}
}

// Close ends the document: open blocks are closed, the footer is written
// for standalone output and everything is flushed. The returned error is
// the first write error seen by the converter, if any.
func (c *Converter) Close() error {
	if err := c.start(); err != nil {
		return err
	}
	c.closeParagraph()
	c.closeList()
	if c.opts.Standalone {
		if err := c.writeTemplate("f", HtmlFooter); err != nil {
			return err
		}
	}
	return c.buf.Flush()
}

// Convert converts every line of r and closes the converter.
func (c *Converter) Convert(r io.Reader) error {
	if err := c.start(); err != nil {
		return err
	}
	err := readLines(r, func(line string) error {
		c.ConvertLine(line)
		if c.opts.AutoFlush {
			return c.buf.Flush()
		}
		return nil
	})
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	tracer().Debugf("converted %d lines", c.lines)
	return err
}

// ConvertString converts an in-memory document.
func ConvertString(s string, opts Options) string {
	var sb strings.Builder
	// Writing to a strings.Builder does not fail.
	_ = NewConverter(&sb, opts).Convert(strings.NewReader(s))
	return sb.String()
}
