// Package document holds the scrollable text shown by the viewer and the
// headings that serve as scroll targets.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/scrollus/internal/scroll"
)

const tabWidth = 4

// Heading is a markdown heading. Its position is the line it starts on.
type Heading struct {
	ID     string
	Title  string
	Level  int
	Line   int
	Column int
}

// Position implements scroll.Element.
func (h Heading) Position() scroll.Point {
	return scroll.Point{X: float64(h.Column), Y: float64(h.Line)}
}

// Document is an immutable snapshot of a file's lines.
type Document struct {
	Path     string
	Title    string
	lines    []string
	width    int
	headings []Heading
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read document: %w", err)
	}
	return Parse(path, string(data)), nil
}

// Parse builds a document from text. Headings are only extracted when path
// names a markdown file.
func Parse(path, text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))

	d := &Document{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		lines: strings.Split(text, "\n"),
	}
	for _, line := range d.lines {
		d.width = max(d.width, lipgloss.Width(line))
	}
	if IsMarkdown(path) {
		d.headings = parseHeadings(d.lines)
	}
	return d
}

func parseHeadings(lines []string) []Heading {
	var out []Heading
	seen := make(map[string]int)
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		// More than three spaces of indentation is a code block.
		if inFence || len(line)-len(trimmed) > 3 {
			continue
		}
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		if level == 0 || level > 6 {
			continue
		}
		rest := trimmed[level:]
		if rest != "" && rest[0] != ' ' {
			continue
		}
		title := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(rest), "#"))
		if title == "" {
			continue
		}

		id := slugify(title)
		if n, ok := seen[id]; ok {
			seen[id] = n + 1
			id += "-" + strconv.Itoa(n+1)
		} else {
			seen[id] = 0
		}
		out = append(out, Heading{
			ID:     id,
			Title:  title,
			Level:  level,
			Line:   i,
			Column: len(line) - len(trimmed),
		})
	}
	return out
}

// slugify lowercases s and joins its words with hyphens.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r > 127:
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			dash = true
		}
	}
	return b.String()
}

// Lines returns the document's lines. The slice must not be modified.
func (d *Document) Lines() []string { return d.lines }

// Len is the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Width is the widest line in cells.
func (d *Document) Width() int { return d.width }

// Size is the content size in cells.
func (d *Document) Size() scroll.Size {
	return scroll.Size{Width: float64(d.width), Height: float64(len(d.lines))}
}

// Headings returns the headings in document order.
func (d *Document) Headings() []Heading { return d.headings }

// Find implements scroll.ElementFinder. A query starting with '#' matches a
// heading id exactly; anything else matches the first heading whose title
// contains the query, ignoring case.
func (d *Document) Find(query string) (scroll.Element, bool) {
	h, ok := d.FindHeading(query)
	if !ok {
		return nil, false
	}
	return h, true
}

// FindHeading is Find with a concrete result.
func (d *Document) FindHeading(query string) (Heading, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Heading{}, false
	}
	if id, ok := strings.CutPrefix(query, "#"); ok {
		for _, h := range d.headings {
			if h.ID == id {
				return h, true
			}
		}
		return Heading{}, false
	}
	q := strings.ToLower(query)
	for _, h := range d.headings {
		if strings.Contains(strings.ToLower(h.Title), q) {
			return h, true
		}
	}
	return Heading{}, false
}

// NextHeading returns the first heading below line.
func (d *Document) NextHeading(line int) (Heading, bool) {
	for _, h := range d.headings {
		if h.Line > line {
			return h, true
		}
	}
	return Heading{}, false
}

// PrevHeading returns the last heading above line.
func (d *Document) PrevHeading(line int) (Heading, bool) {
	for i := len(d.headings) - 1; i >= 0; i-- {
		if d.headings[i].Line < line {
			return d.headings[i], true
		}
	}
	return Heading{}, false
}
