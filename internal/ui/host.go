package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"
	"github.com/olivier-w/scrollus/internal/document"
	"github.com/olivier-w/scrollus/internal/scroll"
)

// viewportHost adapts a bubbles viewport to scroll.Viewport. The viewport
// handles the vertical offset; the horizontal offset is applied here by
// cutting each rendered line.
type viewportHost struct {
	vp  viewport.Model
	doc *document.Document
	x   int
}

func newViewportHost(doc *document.Document, width, height int) *viewportHost {
	h := &viewportHost{vp: viewport.New(width, height), doc: doc}
	h.vp.MouseWheelEnabled = true
	h.render()
	return h
}

func (h *viewportHost) ScrollOffset() scroll.Point {
	return scroll.Point{X: float64(h.x), Y: float64(h.vp.YOffset)}
}

func (h *viewportHost) PageSize() scroll.Size { return h.doc.Size() }

func (h *viewportHost) ViewportSize() scroll.Size {
	return scroll.Size{Width: float64(h.vp.Width), Height: float64(h.vp.Height)}
}

// SetScrollPosition rounds to whole cells; the viewport clamps y.
func (h *viewportHost) SetScrollPosition(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	if nx := h.clampX(int(math.Round(x))); nx != h.x {
		h.x = nx
		h.render()
	}
	h.vp.SetYOffset(int(math.Round(y)))
}

func (h *viewportHost) clampX(x int) int {
	return max(0, min(x, h.doc.Width()-h.vp.Width))
}

// setDocument swaps in a reloaded document, keeping the offsets the
// viewport allows.
func (h *viewportHost) setDocument(doc *document.Document) {
	h.doc = doc
	h.x = h.clampX(h.x)
	h.render()
}

func (h *viewportHost) setSize(width, height int) {
	h.vp.Width = width
	h.vp.Height = height
	h.x = h.clampX(h.x)
	h.render()
}

func (h *viewportHost) line() int { return h.vp.YOffset }

func (h *viewportHost) render() {
	lines := h.doc.Lines()
	if h.x == 0 {
		h.vp.SetContent(strings.Join(lines, "\n"))
		return
	}
	shifted := make([]string, len(lines))
	for i, l := range lines {
		shifted[i] = ansi.Cut(l, h.x, h.x+h.vp.Width)
	}
	h.vp.SetContent(strings.Join(shifted, "\n"))
}
