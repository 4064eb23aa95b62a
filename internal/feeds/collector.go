package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"

	"draftgen/internal/domain"
	"draftgen/internal/sports"
)

// SectionFeeds names one active section and its feed URLs, in the order the
// run wants candidates merged.
type SectionFeeds struct {
	Name string
	URLs []string
}

// Collector fetches all feeds for a run's active sections and produces
// normalized, deduplicated candidates.
type Collector struct {
	fetcher Fetcher
	logger  *slog.Logger
}

func NewCollector(fetcher Fetcher, logger *slog.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		logger:  logger.With("component", "feeds"),
	}
}

// Collect fetches every feed (concurrently per feed), normalizes the items,
// drops within-pass duplicates, and orders sports candidates by relevance.
// A failing feed is recorded and skipped; it never fails the pass. The
// returned candidate order is deterministic: sections in the given order,
// items in feed order (sports re-sorted by score, descending).
func (c *Collector) Collect(ctx context.Context, sections []SectionFeeds, focusMode string) ([]domain.Candidate, []string) {
	type fetchSlot struct {
		section string
		url     string
		items   []Item
		err     error
	}

	var slots []fetchSlot
	for _, s := range sections {
		for _, u := range s.URLs {
			slots = append(slots, fetchSlot{section: s.Name, url: u})
		}
	}

	var wg sync.WaitGroup
	for i := range slots {
		wg.Add(1)
		go func(slot *fetchSlot) {
			defer wg.Done()
			slot.items, slot.err = c.fetcher.Fetch(ctx, slot.url)
		}(&slots[i])
	}
	wg.Wait()

	var feedErrors []string
	seen := make(map[string]struct{})
	bySection := make(map[string][]domain.Candidate)

	for _, slot := range slots {
		if slot.err != nil {
			c.logger.Warn("feed fetch failed", "url", slot.url, "error", slot.err)
			feedErrors = append(feedErrors, fmt.Sprintf("%s: %v", slot.url, slot.err))
			continue
		}
		for _, item := range slot.items {
			cand, ok := normalize(slot.section, item)
			if !ok {
				continue
			}
			key := strings.ToLower(cand.Title) + "|" + cand.URL
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			bySection[cand.Section] = append(bySection[cand.Section], cand)
		}
	}

	var candidates []domain.Candidate
	for _, s := range sections {
		section := bySection[s.Name]
		if s.Name == domain.SectionSports {
			for i := range section {
				section[i].Score = sports.Score(section[i].Title, section[i].Snippet, focusMode)
			}
			sort.SliceStable(section, func(i, j int) bool {
				return section[i].Score > section[j].Score
			})
		}
		candidates = append(candidates, section...)
	}

	c.logger.Info("collected candidates",
		"count", len(candidates),
		"feed_errors", len(feedErrors),
	)
	return candidates, feedErrors
}

// normalize cleans one raw item; empty titles or unusable URLs reject it.
func normalize(section string, item Item) (domain.Candidate, bool) {
	title := strings.Join(strings.Fields(item.Title), " ")
	canonical := CanonicalURL(item.Link)
	if title == "" || canonical == "" {
		return domain.Candidate{}, false
	}

	return domain.Candidate{
		Section:     domain.NormalizeSection(section),
		Title:       title,
		URL:         canonical,
		Snippet:     strings.TrimSpace(item.Snippet),
		PublishedAt: item.PublishedAt,
	}, true
}

// trackingParams are stripped during URL canonicalization, together with any
// utm_* parameter.
var trackingParams = map[string]struct{}{
	"fbclid": {}, "gclid": {}, "igshid": {}, "mc_cid": {}, "mc_eid": {},
	"ref": {}, "smid": {}, "cmpid": {}, "ncid": {},
}

// CanonicalURL strips the fragment and known tracking query parameters.
// Unparseable URLs canonicalize to empty.
func CanonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	u.Fragment = ""
	q := u.Query()
	for name := range q {
		if _, tracked := trackingParams[name]; tracked || strings.HasPrefix(name, "utm_") {
			q.Del(name)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
