package jobsource

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripHTML reduces an HTML-bearing description to its text content.
// Adzuna descriptions sometimes carry markup; scanning them for the
// word "remote" must not trip over tag attributes.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}
