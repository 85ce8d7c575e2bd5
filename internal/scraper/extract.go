package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DataFiling/ScrapeHawk/models"
)

// ExtractText returns the trimmed text of every element matching the CSS
// selector, in document order. Without a selector it falls back to all
// paragraph elements. Elements that are empty after trimming are dropped.
func ExtractText(doc *Document, selector string) []string {
	query := selector
	if query == "" {
		query = "p"
	}
	content := []string{}
	doc.doc.Find(query).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 0 {
			content = append(content, text)
		}
	})
	return content
}

// ExtractLinks enumerates every anchor carrying an href, resolves it
// against the page URL and classifies it as external when the resolved
// host differs from the page host. With externalOnly set, same-host
// links are filtered out before counting.
func ExtractLinks(doc *Document, base *url.URL, externalOnly bool) []models.LinkRecord {
	links := []models.LinkRecord{}
	doc.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		external := resolved.Host != base.Host
		if externalOnly && !external {
			return
		}
		links = append(links, models.LinkRecord{
			Text:     strings.TrimSpace(s.Text()),
			URL:      resolved.String(),
			External: external,
		})
	})
	return links
}

// ExtractMetadata collects the title, meta description, Open Graph and
// Twitter card properties. OG and twitter maps are keyed by the property
// suffix; a duplicate property later in the document wins.
func ExtractMetadata(doc *Document, pageUrl string) models.PageMetadata {
	meta := models.PageMetadata{
		URL:         pageUrl,
		Title:       doc.Title(),
		OpenGraph:   metaByPrefix(doc, "property", "og:"),
		TwitterData: metaByPrefix(doc, "name", "twitter:"),
	}
	desc := doc.doc.Find(`meta[name="description"]`).First()
	if desc.Length() > 0 {
		if content, ok := desc.Attr("content"); ok {
			meta.Description = &content
		}
	}
	return meta
}

func metaByPrefix(doc *Document, attr, prefix string) map[string]string {
	result := make(map[string]string)
	doc.doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name := s.AttrOr(attr, "")
		if strings.HasPrefix(name, prefix) {
			result[strings.TrimPrefix(name, prefix)] = s.AttrOr("content", "")
		}
	})
	return result
}
