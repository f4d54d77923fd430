package compose

import "strings"

// Inch converts inches to PDF points. Configuration lengths are written in
// inches; blocks and styles carry points.
func Inch(in float64) float64 {
	return in * 72
}

// =============================================================================
// Blocks
// =============================================================================

// Block is one abstract unit of output. The render delegate consumes the
// block sequence in order and owns all wrapping and pagination.
type Block interface {
	isBlock()
}

// Paragraph is a styled text block. Most paragraphs hold a single plain
// span; skill category lines and project lead-ins use a bold or italic
// lead-in span.
type Paragraph struct {
	Style StyleID
	Spans []Span
}

func (Paragraph) isBlock() {}

// Text returns the concatenated span text.
func (p Paragraph) Text() string {
	if len(p.Spans) == 1 {
		return p.Spans[0].Text
	}
	var sb strings.Builder
	for _, s := range p.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Span is a run of text with optional emphasis layered on the paragraph's
// base style.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// Spacer is fixed vertical whitespace, in points.
type Spacer struct {
	Height float64
}

func (Spacer) isBlock() {}

// TitleRow is the two-column entry heading: a left-aligned title in the
// item-title style and a right-aligned date in the date-range style.
type TitleRow struct {
	Title string
	Date  string
}

func (TitleRow) isBlock() {}

// Rule is a full-width horizontal line, drawn under section headers.
type Rule struct {
	Thickness  float64
	SpaceAfter float64
}

func (Rule) isBlock() {}

// =============================================================================
// Builder
// =============================================================================

// Builder accumulates the block sequence for one document. The assembler
// owns it and passes it to each section renderer in turn; renderers append
// and never retain it.
type Builder struct {
	blocks []Block
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends raw blocks.
func (b *Builder) Add(blocks ...Block) {
	b.blocks = append(b.blocks, blocks...)
}

// Paragraph appends a single-span paragraph.
func (b *Builder) Paragraph(style StyleID, text string) {
	b.Add(Paragraph{Style: style, Spans: []Span{{Text: text}}})
}

// Styled appends a multi-span paragraph.
func (b *Builder) Styled(style StyleID, spans ...Span) {
	b.Add(Paragraph{Style: style, Spans: spans})
}

// Spacer appends vertical whitespace, in points.
func (b *Builder) Spacer(points float64) {
	b.Add(Spacer{Height: points})
}

// TitleRow appends a two-column title/date row.
func (b *Builder) TitleRow(title, date string) {
	b.Add(TitleRow{Title: title, Date: date})
}

// SectionHeader appends a section heading followed by its divider rule.
func (b *Builder) SectionHeader(title string) {
	b.Paragraph(StyleSectionHeader, title)
	b.Add(Rule{Thickness: 1, SpaceAfter: 4})
}

// Blocks returns the accumulated sequence.
func (b *Builder) Blocks() []Block {
	return b.blocks
}

// Len returns the number of accumulated blocks.
func (b *Builder) Len() int {
	return len(b.blocks)
}
