package render

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/resumeforge/resumeforge/pkg/compose"
	"github.com/resumeforge/resumeforge/pkg/errors"
)

// Title rows split into two fixed columns, matching the resume template:
// a wide left column for the entry title and a narrower right column for
// the date range.
const (
	titleColWidth = 4.5 * 72
	dateColWidth  = 2.0 * 72
)

// referenceDate is the pinned creation date embedded in PDF metadata so
// identical inputs render to identical bytes.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Option configures PDF rendering.
type Option func(*pdfRenderer)

type pdfRenderer struct {
	margin  float64 // points
	title   string
	created time.Time
}

// WithMargin sets all four page margins, in points.
func WithMargin(points float64) Option {
	return func(r *pdfRenderer) { r.margin = points }
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(r *pdfRenderer) { r.title = title }
}

// WithCreationDate overrides the pinned creation date metadata.
func WithCreationDate(tm time.Time) Option {
	return func(r *pdfRenderer) { r.created = tm }
}

func newPDFRenderer(opts ...Option) pdfRenderer {
	r := pdfRenderer{
		margin:  compose.Inch(0.6),
		created: referenceDate,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// PDF renders a block sequence onto US Letter portrait pages and returns
// the document bytes. Page breaks fall wherever a block no longer fits;
// blocks themselves carry no page information.
func PDF(blocks []compose.Block, sheet compose.Stylesheet, opts ...Option) ([]byte, error) {
	r := newPDFRenderer(opts...)

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(r.margin, r.margin, r.margin)
	pdf.SetAutoPageBreak(true, r.margin)
	pdf.SetCreationDate(r.created)
	pdf.SetCreator("resumeforge", true)
	if r.title != "" {
		pdf.SetTitle(r.title, true)
	}
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*r.margin

	for _, blk := range blocks {
		switch b := blk.(type) {
		case compose.Paragraph:
			st, ok := sheet[b.Style]
			if !ok {
				return nil, errors.New(errors.ErrCodeRender, "no style registered for %q", b.Style)
			}
			writeParagraph(pdf, tr, st, b, contentWidth)
		case compose.TitleRow:
			if err := writeTitleRow(pdf, tr, sheet, b); err != nil {
				return nil, err
			}
		case compose.Spacer:
			pdf.SetY(pdf.GetY() + b.Height)
		case compose.Rule:
			drawRule(pdf, b, r.margin, pageWidth)
		default:
			return nil, errors.New(errors.ErrCodeRender, "unsupported block type %T", blk)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "writing pdf")
	}
	return buf.Bytes(), nil
}

// writeParagraph emits one paragraph. Single-span paragraphs go through
// MultiCell, which handles alignment and wrapping; multi-span paragraphs
// flow spans inline with per-span faces and terminate the line manually.
func writeParagraph(pdf *gofpdf.Fpdf, tr func(string) string, st compose.Style, p compose.Paragraph, width float64) {
	if st.SpaceBefore > 0 {
		pdf.SetY(pdf.GetY() + st.SpaceBefore)
	}
	applyStyle(pdf, st)

	if len(p.Spans) <= 1 {
		pdf.MultiCell(width, st.Leading, tr(p.Text()), "", alignString(st.Align), false)
	} else {
		for _, sp := range p.Spans {
			f := compose.SpanFont(st, sp)
			pdf.SetFont(f.Family, f.Style, st.Size)
			pdf.Write(st.Leading, tr(sp.Text))
		}
		pdf.Ln(st.Leading)
	}

	if st.SpaceAfter > 0 {
		pdf.SetY(pdf.GetY() + st.SpaceAfter)
	}
}

// writeTitleRow emits the two-column title/date row. Both cells share the
// item-title leading so the row stays level.
func writeTitleRow(pdf *gofpdf.Fpdf, tr func(string) string, sheet compose.Stylesheet, row compose.TitleRow) error {
	title, ok := sheet[compose.StyleItemTitle]
	if !ok {
		return errors.New(errors.ErrCodeRender, "no style registered for %q", compose.StyleItemTitle)
	}
	date, ok := sheet[compose.StyleDateRange]
	if !ok {
		return errors.New(errors.ErrCodeRender, "no style registered for %q", compose.StyleDateRange)
	}

	h := title.Leading
	applyStyle(pdf, title)
	pdf.CellFormat(titleColWidth, h, tr(row.Title), "", 0, "L", false, 0, "")
	applyStyle(pdf, date)
	pdf.CellFormat(dateColWidth, h, tr(row.Date), "", 1, "R", false, 0, "")

	if title.SpaceAfter > 0 {
		pdf.SetY(pdf.GetY() + title.SpaceAfter)
	}
	return nil
}

func drawRule(pdf *gofpdf.Fpdf, rule compose.Rule, margin, pageWidth float64) {
	y := pdf.GetY()
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(rule.Thickness)
	pdf.Line(margin, y, pageWidth-margin, y)
	pdf.SetY(y + rule.Thickness + rule.SpaceAfter)
}

func applyStyle(pdf *gofpdf.Fpdf, st compose.Style) {
	pdf.SetFont(st.Font.Family, st.Font.Style, st.Size)
	pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func alignString(a compose.Align) string {
	switch a {
	case compose.AlignCenter:
		return "C"
	case compose.AlignRight:
		return "R"
	case compose.AlignJustify:
		return "J"
	default:
		return "L"
	}
}
