package widget

import (
	"github.com/dshills/pdfsketch/internal/geom"
	"github.com/dshills/pdfsketch/internal/renderer/core"
	"github.com/dshills/pdfsketch/internal/view"
)

// Label draws a single line of text from its top-left corner. It does not
// take input.
type Label struct {
	view.Base

	text  string
	style core.Style
}

// NewLabel creates a label.
func NewLabel(text string, style core.Style) *Label {
	return &Label{text: text, style: style}
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text and requests a repaint when it changed.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	view.SetNeedsDisplay(l)
}

// SetStyle replaces the style.
func (l *Label) SetStyle(style core.Style) {
	l.style = style
	view.SetNeedsDisplay(l)
}

// Draw fills the background in the label's style and writes the text.
func (l *Label) Draw(c view.Canvas, dirty geom.Rect) {
	c.Fill(dirty, core.NewStyledCell(' ', l.style))
	view.DrawText(c, geom.Point{}, l.text, l.style)
}
