// Package opcode extracts opcode definitions from reference document text.
//
// A definition is any span of the form NAME = DECIMAL (0xHEX). Scanning
// collects definitions into an ordered Table, page by page, preserving the
// order they appear in the document. Spans that do not match the definition
// shape are skipped, and duplicate names are kept as-is; the table performs
// no uniqueness validation.
//
// An optional amendments file corrects a scanned table before rendering.
// It supports add/drop/rename directives, .equ equates, and compile-time
// $() expression evaluation for values.
package opcode
