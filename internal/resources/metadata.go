// Package resources enriches catalog learning resources with metadata
// scraped from their pages.
package resources

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata is the page information pulled from a resource URL.
type Metadata struct {
	Title       string
	Description string
}

// maxDescriptionLength truncates runaway meta descriptions.
const maxDescriptionLength = 500

// ExtractMetadata pulls the title and description out of a resource page.
// Open Graph tags win over plain HTML tags since course platforms keep them
// more accurate.
func ExtractMetadata(html string) (*Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	meta := &Metadata{}

	if content, ok := metaContent(doc, `meta[property="og:title"]`); ok {
		meta.Title = content
	} else {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if content, ok := metaContent(doc, `meta[property="og:description"]`); ok {
		meta.Description = content
	} else if content, ok := metaContent(doc, `meta[name="description"]`); ok {
		meta.Description = content
	}

	if len(meta.Description) > maxDescriptionLength {
		meta.Description = meta.Description[:maxDescriptionLength]
	}

	if meta.Title == "" && meta.Description == "" {
		return nil, fmt.Errorf("no metadata found in page")
	}
	return meta, nil
}

func metaContent(doc *goquery.Document, selector string) (string, bool) {
	content, exists := doc.Find(selector).First().Attr("content")
	content = strings.TrimSpace(content)
	return content, exists && content != ""
}
