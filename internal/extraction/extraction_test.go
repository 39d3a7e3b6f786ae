package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestDOCX assembles a minimal DOCX archive with one w:p element
// per entry in paragraphs.
func buildTestDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body strings.Builder
	for _, para := range paragraphs {
		if para == "" {
			body.WriteString(`<w:p/>`)
			continue
		}
		body.WriteString(`<w:p><w:r><w:t>` + para + `</w:t></w:r></w:p>`)
	}

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body.String() + `</w:body></w:document>`,
	}

	buf := &bytes.Buffer{}
	writer := zip.NewWriter(buf)
	for name, content := range files {
		f, err := writer.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buf.Bytes()
}

// buildTestPDF assembles a minimal single-font PDF with one page per
// entry in pages. An empty entry produces a page with no text.
func buildTestPDF(t *testing.T, pages []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), len(pages)))
	writeObj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	for i, text := range pages {
		pageNum := 4 + 2*i
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n", pageNum, pageNum+1))

		stream := ""
		if text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			pageNum+1, len(stream), stream))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)

	return buf.Bytes()
}

// TestText_DOCX tests extraction of a valid DOCX, with blank paragraphs
// skipped and the rest joined by newlines
func TestText_DOCX(t *testing.T) {
	data := buildTestDOCX(t, []string{
		"Python and React experience",
		"   ",
		"",
		"3 years of AWS",
	})

	text, err := Text(data, FormatDOCX)
	require.NoError(t, err)

	assert.Equal(t, "Python and React experience\n3 years of AWS", text)
}

// TestText_DOCXSingleParagraph tests the simplest valid document
func TestText_DOCXSingleParagraph(t *testing.T) {
	data := buildTestDOCX(t, []string{"Kubernetes and Docker"})

	text, err := Text(data, FormatDOCX)
	require.NoError(t, err)

	assert.Equal(t, "Kubernetes and Docker", text)
}

// TestText_PDF tests extraction of a valid PDF, with textless pages
// skipped and the remaining pages joined by newlines in page order
func TestText_PDF(t *testing.T) {
	data := buildTestPDF(t, []string{
		"Python developer resume",
		"",
		"AWS and Docker",
	})

	text, err := Text(data, FormatPDF)
	require.NoError(t, err)

	assert.Contains(t, text, "Python developer resume")
	assert.Contains(t, text, "AWS and Docker")

	// The textless middle page contributes nothing: exactly one join.
	assert.Equal(t, 1, strings.Count(text, "\n"))
	assert.Less(t,
		strings.Index(text, "Python developer resume"),
		strings.Index(text, "AWS and Docker"))
}

// TestText_CorruptPDF tests that unparseable PDF bytes return a ParseError
func TestText_CorruptPDF(t *testing.T) {
	_, err := Text([]byte("this is not a pdf"), FormatPDF)

	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, FormatPDF, parseErr.Format)
}

// TestText_CorruptDOCX tests that unparseable DOCX bytes return a ParseError
func TestText_CorruptDOCX(t *testing.T) {
	_, err := Text([]byte("this is not a zip archive"), FormatDOCX)

	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, FormatDOCX, parseErr.Format)
}

// TestText_NoFormatFallback tests that a valid-looking file declared as
// the wrong format fails rather than falling back
func TestText_NoFormatFallback(t *testing.T) {
	// A minimal PDF header is still not a DOCX.
	_, err := Text([]byte("%PDF-1.4\n%%EOF"), FormatDOCX)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, FormatDOCX, parseErr.Format)
}

// TestParseError_Message tests the error string carries the format
func TestParseError_Message(t *testing.T) {
	err := &ParseError{Format: FormatPDF, Cause: assert.AnError}

	assert.Contains(t, err.Error(), "pdf")
	assert.ErrorIs(t, err, assert.AnError)
}
