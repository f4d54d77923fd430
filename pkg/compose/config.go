package compose

import (
	"github.com/resumeforge/resumeforge/pkg/errors"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// Config is the resolved visual configuration for one run. It is built once
// from defaults overlaid with the document's config block and never mutated
// afterwards. Lengths (margin, spacing) are in inches; sizes in points.
type Config struct {
	FontName          string   `json:"font_name"`
	FontNameBold      string   `json:"font_name_bold"`
	FontNameItalic    string   `json:"font_name_italic"`
	NameSize          float64  `json:"name_size"`
	SectionHeaderSize float64  `json:"section_header_size"`
	TitleSize         float64  `json:"title_size"`
	BodySize          float64  `json:"body_size"`
	Margin            float64  `json:"margin"`
	SectionSpacing    float64  `json:"section_spacing"`
	ItemSpacing       float64  `json:"item_spacing"`
	SectionOrder      []string `json:"section_order"`
	Footer            bool     `json:"footer"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		FontName:          "Helvetica",
		FontNameBold:      "Helvetica-Bold",
		FontNameItalic:    "Helvetica-Oblique",
		NameSize:          20,
		SectionHeaderSize: 12,
		TitleSize:         10,
		BodySize:          9,
		Margin:            0.6,
		SectionSpacing:    0.08,
		ItemSpacing:       0.06,
		SectionOrder:      append([]string(nil), resume.SectionNames...),
		Footer:            false,
	}
}

// Resolve overlays a document's config sub-tree onto the defaults. Every
// option is independently overridable and absence never errors; a
// wrong-typed value is a VALIDATION_ERROR naming the offending key.
func Resolve(raw *resume.Mapping) (*Config, error) {
	cfg := DefaultConfig()
	if raw.Len() == 0 {
		return cfg, nil
	}

	if v, ok := raw.Get("fonts"); ok {
		fm, ok := v.(*resume.Mapping)
		if !ok {
			return nil, errors.New(errors.ErrCodeValidation, "config: fonts must be a mapping")
		}
		if err := stringOption(fm, "name", "fonts.name", &cfg.FontName); err != nil {
			return nil, err
		}
		if err := stringOption(fm, "name_bold", "fonts.name_bold", &cfg.FontNameBold); err != nil {
			return nil, err
		}
		if err := stringOption(fm, "name_italic", "fonts.name_italic", &cfg.FontNameItalic); err != nil {
			return nil, err
		}
		if err := numberOption(fm, "name_size", "fonts.name_size", &cfg.NameSize); err != nil {
			return nil, err
		}
		if err := numberOption(fm, "section_header_size", "fonts.section_header_size", &cfg.SectionHeaderSize); err != nil {
			return nil, err
		}
		if err := numberOption(fm, "title_size", "fonts.title_size", &cfg.TitleSize); err != nil {
			return nil, err
		}
		if err := numberOption(fm, "body_size", "fonts.body_size", &cfg.BodySize); err != nil {
			return nil, err
		}
	}

	if err := numberOption(raw, "margin", "margin", &cfg.Margin); err != nil {
		return nil, err
	}
	if err := numberOption(raw, "section_spacing", "section_spacing", &cfg.SectionSpacing); err != nil {
		return nil, err
	}
	if err := numberOption(raw, "item_spacing", "item_spacing", &cfg.ItemSpacing); err != nil {
		return nil, err
	}

	if v, ok := raw.Get("section_order"); ok {
		list, ok := v.([]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeValidation, "config: section_order must be a list")
		}
		order := make([]string, 0, len(list))
		for _, item := range list {
			s := resume.Stringify(item)
			if s == "" {
				return nil, errors.New(errors.ErrCodeValidation, "config: section_order entries must be strings")
			}
			order = append(order, s)
		}
		cfg.SectionOrder = order
	}

	if v, ok := raw.Get("footer"); ok {
		b, ok := v.(bool)
		if !ok {
			return nil, errors.New(errors.ErrCodeValidation, "config: footer must be a boolean")
		}
		cfg.Footer = b
	}

	return cfg, nil
}

func stringOption(m *resume.Mapping, key, path string, dst *string) error {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errors.New(errors.ErrCodeValidation, "config: %s must be a string", path)
	}
	*dst = s
	return nil
}

func numberOption(m *resume.Mapping, key, path string, dst *float64) error {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case int64:
		*dst = float64(n)
	case float64:
		*dst = n
	default:
		return errors.New(errors.ErrCodeValidation, "config: %s must be a number", path)
	}
	return nil
}
