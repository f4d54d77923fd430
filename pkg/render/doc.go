// Package render turns composed block sequences into final document bytes.
//
// # Overview
//
// This package is the only layer that talks to the PDF engine (gofpdf). It
// consumes the abstract block sequence produced by the compose package
// together with a resolved stylesheet, and owns everything physical about
// the output: page size, margins, line wrapping, and pagination. Upstream
// layers never measure text or count pages.
//
//	blocks, _ := compose.Assemble(doc, cfg)
//	sheet, _ := compose.NewStylesheet(cfg)
//	pdf, err := render.PDF(blocks, sheet, render.WithMargin(compose.Inch(cfg.Margin)))
//
// # Determinism
//
// Identical block sequences and stylesheets produce byte-identical PDFs:
// the creation date embedded in the document metadata is pinned rather
// than sampled from the clock. Callers that want wall-clock metadata can
// override it with [WithCreationDate].
//
// # Text Encoding
//
// The core PDF fonts are single-byte (cp1252). Block text arrives as
// UTF-8 and is translated before writing; characters outside cp1252 are
// dropped by the translator rather than failing the render.
package render
