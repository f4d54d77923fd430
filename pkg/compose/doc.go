// Package compose turns a normalized resume document into an ordered
// sequence of abstract content blocks ready for the render delegate.
//
// # Overview
//
// Composition is a linear, single-pass transformation:
//
//  1. Resolve the document's config sub-tree against documented defaults
//     (fonts, sizes, spacing, section order, footer toggle).
//  2. Emit the header: centered name, contact line, links line.
//  3. Invoke one renderer per name in the configured section order through
//     a static dispatch table. Unknown names warn and are skipped.
//  4. Optionally append the footer.
//
// The output is a flat []Block: styled paragraphs, fixed-height spacers,
// two-column title/date rows, and horizontal rules. Blocks carry style
// identifiers, not layout results; line wrapping and pagination belong to
// the render delegate.
//
// # Builder
//
// Blocks accumulate in an explicit Builder owned by the assembler and
// threaded through every renderer call. Renderers only append; none retain
// the builder after returning.
//
// # Warnings
//
// Composition never fails on content. Two conditions produce non-fatal
// warnings: a section_order entry naming no known section, and a known
// section that has data but appears nowhere in section_order.
package compose
