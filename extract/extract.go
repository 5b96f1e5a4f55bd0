// Package extract produces per-page plain text from a reference document.
package extract

import (
	"fmt"
	"iter"
	"os"

	"github.com/ledongthuc/pdf"
)

// Document is an open reference document. Pages of plain text are pulled
// from it lazily; the document is finite and not restartable without
// reopening.
type Document struct {
	file    *os.File
	reader  *pdf.Reader
	textual int
	err     error
}

// Open opens the document at path for text extraction.
func Open(path string) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ErrDocumentRead{Err: fmt.Errorf("%v", r)}
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		err = &ErrDocumentRead{Err: err}
		return
	}

	doc = &Document{file: file, reader: reader}
	return
}

// Close releases the document's file handle.
func (doc *Document) Close() error {
	return doc.file.Close()
}

// NumPage returns the number of pages in the document.
func (doc *Document) NumPage() int {
	return doc.reader.NumPage()
}

// Pages iterates the document in page order, yielding each page number and
// that page's plain text. Iteration stops at the first undecodable page;
// Err reports it after the sequence ends.
func (doc *Document) Pages() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		npage := doc.reader.NumPage()
		for pageno := 1; pageno <= npage; pageno++ {
			text, err := doc.pageText(pageno)
			if err != nil {
				doc.err = &ErrPage{PageNo: pageno, Err: err}
				return
			}
			if len(text) != 0 {
				doc.textual += 1
			}
			if !yield(pageno, text) {
				return
			}
		}
	}
}

// Err reports the first error encountered by Pages, or ErrNoText when no
// page yielded any text. Valid once the Pages sequence has been fully
// consumed.
func (doc *Document) Err() (err error) {
	if doc.err != nil {
		return doc.err
	}
	if doc.textual == 0 {
		return ErrNoText
	}
	return
}

// pageText extracts the plain text of a single page. The underlying decoder
// panics on malformed page content; that surfaces here as an error.
func (doc *Document) pageText(pageno int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	page := doc.reader.Page(pageno)
	if page.V.IsNull() {
		return
	}

	return page.GetPlainText(nil)
}
