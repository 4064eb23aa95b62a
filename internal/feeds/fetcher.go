// Package feeds pulls raw items from configured RSS/Atom feeds and
// normalizes them into run candidates.
package feeds

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// Item is a raw feed entry at the transport boundary.
type Item struct {
	Title       string
	Link        string
	Snippet     string
	PublishedAt time.Time
}

// Fetcher retrieves all items from one feed URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]Item, error)
}

// GofeedFetcher parses RSS/Atom feeds over HTTP.
type GofeedFetcher struct {
	parser *gofeed.Parser
}

func NewGofeedFetcher(client *http.Client) *GofeedFetcher {
	parser := gofeed.NewParser()
	if client != nil {
		parser.Client = client
	} else {
		parser.Client = &http.Client{Timeout: 20 * time.Second}
	}
	parser.UserAgent = "draftgen/1.0"
	return &GofeedFetcher{parser: parser}
}

func (f *GofeedFetcher) Fetch(ctx context.Context, url string) ([]Item, error) {
	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(feed.Items))
	for _, raw := range feed.Items {
		published := time.Time{}
		if raw.PublishedParsed != nil {
			published = *raw.PublishedParsed
		} else if raw.UpdatedParsed != nil {
			published = *raw.UpdatedParsed
		}

		items = append(items, Item{
			Title:       raw.Title,
			Link:        raw.Link,
			Snippet:     stripHTML(raw.Description),
			PublishedAt: published,
		})
	}
	return items, nil
}

// stripHTML flattens feed descriptions that embed markup into plain text.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
