package scraper

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document wraps a parsed HTML tree. Parsing is lenient: malformed or
// truncated markup yields a best-effort tree, never an error.
type Document struct {
	doc *goquery.Document
}

func ParseDocument(body []byte) *Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		// a bytes.Reader cannot fail mid-parse; worst case is an empty tree
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &Document{doc: doc}
}

// Title returns the trimmed contents of the first <title> element,
// or nil when the page has none.
func (d *Document) Title() *string {
	sel := d.doc.Find("title").First()
	if sel.Length() == 0 {
		return nil
	}
	title := strings.TrimSpace(sel.Text())
	return &title
}
