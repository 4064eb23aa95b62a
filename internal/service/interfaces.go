// Package service orchestrates generation runs: quota allocation, schedule
// gating, duplicate suppression, budget accounting, and draft persistence.
package service

import (
	"context"

	"draftgen/internal/domain"
	"draftgen/internal/feeds"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// DraftStore is the persistence boundary for drafts and their
// duplicate-detection lookback data.
type DraftStore interface {
	RecentTitles(ctx context.Context, lookbackDays int) ([]domain.TitleRecord, error)
	DuplicateExists(ctx context.Context, slug, sourceURL, title string) (bool, error)
	InsertDraft(ctx context.Context, draft *domain.Draft) (int64, error)
	DailyUsage(ctx context.Context) (domain.DailyUsage, error)
	GeneratedToday(ctx context.Context) (map[string]int, error)
}

// CandidateSource produces normalized candidates for the active sections.
type CandidateSource interface {
	Collect(ctx context.Context, sections []feeds.SectionFeeds, focusMode string) ([]domain.Candidate, []string)
}

// DraftBuilder turns one candidate into a draft, reporting tokens spent even
// when the candidate is rejected.
type DraftBuilder interface {
	Build(ctx context.Context, cand domain.Candidate, focusMode string) (*domain.Draft, int, domain.SkipReason)
}

// Publisher notifies downstream consumers of a newly persisted draft.
type Publisher interface {
	Publish(ctx context.Context, draft *domain.Draft) error
	Close() error
}
