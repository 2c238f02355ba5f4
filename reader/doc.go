// Package reader turns a PDF file into a [model.Document].
//
// It is the only package that touches the file system or the PDF format.
// Opening checks the content really is a PDF, then every page yields its
// plain text and the table grids rebuilt from its positioned text runs:
//
//	r, err := reader.Open("ZR-ZT-110-275.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	doc, issues, err := r.Document()
//
// A page that cannot be read is not an error. It contributes empty text and
// no tables, and is reported as an [Issue]. Only failing to open or parse
// the file itself is fatal.
//
// # Text Source
//
// By default page text is rebuilt from run positions ([TextLayout]), one
// line per visual row, cells separated by two spaces. [TextPlain] uses the
// PDF library's plain text instead. That text breaks lines only on BT and T*
// operators, so rows placed with Td run together.
package reader
