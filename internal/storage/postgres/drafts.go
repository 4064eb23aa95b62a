package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"draftgen/internal/domain"
)

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type DraftStore struct {
	db *sqlx.DB
}

func NewDraftStore(db *sqlx.DB) *DraftStore {
	return &DraftStore{db: db}
}

// RecentTitles returns the duplicate-detection lookback window: published
// article titles, draft titles, and the source headlines of sports drafts.
func (s *DraftStore) RecentTitles(ctx context.Context, lookbackDays int) ([]domain.TitleRecord, error) {
	query := `
		SELECT section, title FROM articles
		WHERE created_at >= now() - ($1 || ' days')::interval
		UNION ALL
		SELECT section, title FROM drafts
		WHERE created_at >= now() - ($1 || ' days')::interval
		UNION ALL
		SELECT section, source_title AS title FROM drafts
		WHERE section = 'sports'
		  AND source_title <> ''
		  AND created_at >= now() - ($1 || ' days')::interval`

	var records []domain.TitleRecord
	if err := s.db.SelectContext(ctx, &records, query, lookbackDays); err != nil {
		return nil, fmt.Errorf("select recent titles: %w", err)
	}
	return records, nil
}

// DuplicateExists runs the exact-match duplicate check as one existence
// query across drafts and published articles.
func (s *DraftStore) DuplicateExists(ctx context.Context, slug, sourceURL, title string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM drafts
			WHERE slug = $1 OR source_url = $2 OR lower(title) = lower($3)
		) OR EXISTS (
			SELECT 1 FROM articles
			WHERE slug = $1 OR lower(title) = lower($3)
		)`

	var exists bool
	if err := s.db.GetContext(ctx, &exists, query, slug, sourceURL, title); err != nil {
		return false, fmt.Errorf("check duplicate: %w", err)
	}
	return exists, nil
}

// InsertDraft persists a draft and returns its id. A slug collision gets one
// retry with a time suffix; the draft's Slug field reflects what was stored.
func (s *DraftStore) InsertDraft(ctx context.Context, draft *domain.Draft) (int64, error) {
	id, err := s.insert(ctx, draft)
	if err == nil {
		return id, nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		draft.Slug = draft.Slug + "-" + time.Now().Format("150405")
		return s.insert(ctx, draft)
	}
	return 0, err
}

func (s *DraftStore) insert(ctx context.Context, draft *domain.Draft) (int64, error) {
	query := `
		INSERT INTO drafts (
			slug, title, description, content, section, source_url,
			source_title, source_published_at, model, input_tokens,
			output_tokens, total_tokens, created_via, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		draft.Slug,
		draft.Title,
		draft.Description,
		draft.Content,
		draft.Section,
		draft.SourceURL,
		draft.SourceTitle,
		draft.SourcePublishedAt,
		draft.Model,
		draft.InputTokens,
		draft.OutputTokens,
		draft.TotalTokens,
		draft.CreatedVia,
		draft.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert draft: %w", err)
	}
	return id, nil
}

// DailyUsage sums today's auto-generated token spend and draft count in one
// query. "Today" is the database's current date.
func (s *DraftStore) DailyUsage(ctx context.Context) (domain.DailyUsage, error) {
	query := `
		SELECT COALESCE(SUM(total_tokens), 0) AS total_tokens, COUNT(*) AS draft_count
		FROM drafts
		WHERE created_via = 'auto' AND created_at >= CURRENT_DATE`

	var usage struct {
		TotalTokens int `db:"total_tokens"`
		DraftCount  int `db:"draft_count"`
	}
	if err := s.db.GetContext(ctx, &usage, query); err != nil {
		return domain.DailyUsage{}, fmt.Errorf("select daily usage: %w", err)
	}
	return domain.DailyUsage{TotalTokens: usage.TotalTokens, DraftCount: usage.DraftCount}, nil
}

// GeneratedToday returns today's auto-generated draft count per section.
func (s *DraftStore) GeneratedToday(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT section, COUNT(*) AS n FROM drafts
		WHERE created_via = 'auto' AND created_at >= CURRENT_DATE
		GROUP BY section`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select generated counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var section string
		var n int
		if err := rows.Scan(&section, &n); err != nil {
			return nil, fmt.Errorf("scan generated count: %w", err)
		}
		counts[section] = n
	}
	return counts, rows.Err()
}
