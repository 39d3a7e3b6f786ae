// Package extraction converts uploaded resume documents (PDF or DOCX)
// into plain text, entirely in memory.
package extraction

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies the declared document format of an upload.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Text extracts the full textual content of a document. Page and
// paragraph boundaries collapse to newline separators; no layout
// information is preserved. The declared format is trusted: a file that
// cannot be parsed as it returns a ParseError, with no fallback to the
// other format.
func Text(data []byte, format Format) (string, error) {
	if format == FormatPDF {
		return pdfText(data)
	}
	return docxText(data)
}

// pdfText joins the text of every page, in page order. Pages that yield
// no text (scanned images, decode failures) are skipped, not errors.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: FormatPDF, Cause: err}
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

// docxText joins every non-blank paragraph, in document order.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: FormatDOCX, Cause: err}
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", &ParseError{Format: FormatDOCX, Cause: err}
	}
	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs walks the document XML and collects the visible text
// of each w:p element, dropping paragraphs that are blank after
// trimming. Text lives in w:t elements nested inside runs.
func docxParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := current.String(); strings.TrimSpace(text) != "" {
					paragraphs = append(paragraphs, text)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
