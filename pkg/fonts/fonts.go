// Package fonts maps user-facing font names onto the built-in PDF core
// families. The render delegate ships no font files, so every configurable
// font must resolve to one of the fourteen standard core faces (Helvetica,
// Times, Courier and their bold/oblique variants).
package fonts

import (
	"fmt"
	"sort"
	"strings"
)

// Font identifies a core PDF face as the render delegate expects it:
// a family name plus a style flag string ("", "B", "I", or "BI").
type Font struct {
	Family string
	Style  string
}

// registry maps normalized font names to core faces. Arial is a historical
// alias for Helvetica and resolves to it.
var registry = map[string]Font{
	"helvetica":             {Family: "Helvetica", Style: ""},
	"helvetica-bold":        {Family: "Helvetica", Style: "B"},
	"helvetica-oblique":     {Family: "Helvetica", Style: "I"},
	"helvetica-italic":      {Family: "Helvetica", Style: "I"},
	"helvetica-boldoblique": {Family: "Helvetica", Style: "BI"},
	"arial":                 {Family: "Helvetica", Style: ""},
	"arial-bold":            {Family: "Helvetica", Style: "B"},
	"arial-italic":          {Family: "Helvetica", Style: "I"},
	"times":                 {Family: "Times", Style: ""},
	"times-roman":           {Family: "Times", Style: ""},
	"times-bold":            {Family: "Times", Style: "B"},
	"times-italic":          {Family: "Times", Style: "I"},
	"times-bolditalic":      {Family: "Times", Style: "BI"},
	"courier":               {Family: "Courier", Style: ""},
	"courier-bold":          {Family: "Courier", Style: "B"},
	"courier-oblique":       {Family: "Courier", Style: "I"},
	"courier-italic":        {Family: "Courier", Style: "I"},
	"courier-boldoblique":   {Family: "Courier", Style: "BI"},
}

// normalize lowercases a font name and folds spaces and underscores into
// hyphens so "Helvetica Bold" and "helvetica_bold" match "helvetica-bold".
func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "-")
	n = strings.ReplaceAll(n, "_", "-")
	return n
}

// Resolve looks up a font name and returns the matching core face.
// Returns an error naming the unknown font when no face matches.
func Resolve(name string) (Font, error) {
	if f, ok := registry[normalize(name)]; ok {
		return f, nil
	}
	return Font{}, fmt.Errorf("unknown font %q (supported: %s)", name, strings.Join(Names(), ", "))
}

// Valid reports whether a font name resolves to a core face.
func Valid(name string) bool {
	_, ok := registry[normalize(name)]
	return ok
}

// Names returns the supported font names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
