package domain

import "time"

const (
	CreatedViaManual = "manual"
	CreatedViaAuto   = "auto"

	StatusPendingReview = "pending_review"
	StatusPublished     = "published"
)

// Draft is a generated content record awaiting human review.
type Draft struct {
	ID                 int64      `db:"id"`
	Slug               string     `db:"slug"`
	Title              string     `db:"title"`
	Description        string     `db:"description"`
	Content            string     `db:"content"`
	Section            string     `db:"section"`
	SourceURL          string     `db:"source_url"`
	SourceTitle        string     `db:"source_title"`
	SourcePublishedAt  time.Time  `db:"source_published_at"`
	Model              string     `db:"model"`
	InputTokens        int        `db:"input_tokens"`
	OutputTokens       int        `db:"output_tokens"`
	TotalTokens        int        `db:"total_tokens"`
	CreatedVia         string     `db:"created_via"`
	Status             string     `db:"status"`
	PublishedArticleID *int64     `db:"published_article_id"`
	CreatedAt          time.Time  `db:"created_at"`
}

// TitleRecord is one row of the duplicate-detection lookback window.
type TitleRecord struct {
	Section string `db:"section"`
	Title   string `db:"title"`
}

// DailyUsage summarizes today's auto-generated output, read once at run start.
type DailyUsage struct {
	TotalTokens int
	DraftCount  int
}
