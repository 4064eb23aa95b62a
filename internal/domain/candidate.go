package domain

import "time"

// Candidate is an unprocessed feed item scoped to one run. It is never
// persisted; the draft builder turns accepted candidates into Drafts.
type Candidate struct {
	Section     string
	Title       string
	URL         string
	Snippet     string
	PublishedAt time.Time
	Score       int
}
