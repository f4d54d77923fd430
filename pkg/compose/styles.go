package compose

import (
	"strings"

	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/fonts"
)

// StyleID names one of the fixed visual styles of the resume template.
type StyleID string

const (
	StyleName          StyleID = "name"
	StyleContact       StyleID = "contact"
	StyleSectionHeader StyleID = "section_header"
	StyleItemTitle     StyleID = "item_title"
	StyleItemSubtitle  StyleID = "item_subtitle"
	StyleDateRange     StyleID = "date_range"
	StyleBody          StyleID = "body"
	StyleSummary       StyleID = "summary"
	StyleSkillItem     StyleID = "skill_item"
	StyleFooter        StyleID = "footer"
)

// Align is horizontal paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Color is an RGB text color.
type Color struct {
	R, G, B int
}

var (
	black  = Color{0, 0, 0}
	gray33 = Color{51, 51, 51}
	gray66 = Color{102, 102, 102}
	gray99 = Color{153, 153, 153}
)

// Style is one resolved paragraph style. Sizes, leading, and spacing are in
// points.
type Style struct {
	Font        fonts.Font
	Size        float64
	Color       Color
	Align       Align
	Leading     float64
	SpaceBefore float64
	SpaceAfter  float64
}

// Stylesheet maps style IDs to resolved styles for one run.
type Stylesheet map[StyleID]Style

// NewStylesheet resolves the template's styles against a configuration.
// Sizes come from the config; colors, leading, and spacing are fixed by the
// template. Font names must resolve to core PDF faces.
func NewStylesheet(cfg *Config) (Stylesheet, error) {
	base, err := fonts.Resolve(cfg.FontName)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation, err, "config: fonts.name")
	}
	bold, err := fonts.Resolve(cfg.FontNameBold)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation, err, "config: fonts.name_bold")
	}
	italic, err := fonts.Resolve(cfg.FontNameItalic)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation, err, "config: fonts.name_italic")
	}

	return Stylesheet{
		StyleName:          {Font: bold, Size: cfg.NameSize, Color: black, Align: AlignCenter, Leading: cfg.NameSize * 1.2, SpaceAfter: 4},
		StyleContact:       {Font: base, Size: cfg.BodySize, Color: gray33, Align: AlignCenter, Leading: 11, SpaceAfter: 8},
		StyleSectionHeader: {Font: bold, Size: cfg.SectionHeaderSize, Color: black, Align: AlignLeft, Leading: 14, SpaceBefore: 8, SpaceAfter: 4},
		StyleItemTitle:     {Font: bold, Size: cfg.TitleSize, Color: black, Align: AlignLeft, Leading: 12, SpaceAfter: 1},
		StyleItemSubtitle:  {Font: italic, Size: cfg.BodySize, Color: gray33, Align: AlignLeft, Leading: 11, SpaceAfter: 1},
		StyleDateRange:     {Font: base, Size: cfg.BodySize, Color: gray66, Align: AlignRight, Leading: 11},
		StyleBody:          {Font: base, Size: cfg.BodySize, Color: black, Align: AlignLeft, Leading: 12, SpaceAfter: 2},
		StyleSummary:       {Font: base, Size: cfg.BodySize, Color: black, Align: AlignJustify, Leading: 12, SpaceAfter: 4},
		StyleSkillItem:     {Font: base, Size: cfg.BodySize, Color: black, Align: AlignLeft, Leading: 11, SpaceAfter: 2},
		StyleFooter:        {Font: base, Size: 7, Color: gray99, Align: AlignCenter, Leading: 9},
	}, nil
}

// SpanFont folds a span's emphasis flags into the paragraph style's face.
func SpanFont(st Style, sp Span) fonts.Font {
	f := st.Font
	if sp.Bold && !strings.Contains(f.Style, "B") {
		f.Style += "B"
	}
	if sp.Italic && !strings.Contains(f.Style, "I") {
		f.Style += "I"
	}
	return f
}
