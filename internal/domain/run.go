package domain

import "time"

// SkipReason is a machine-readable code explaining why a run or a single
// candidate produced no draft.
type SkipReason string

const (
	SkipNotInScheduleSlot  SkipReason = "not_in_schedule_slot"
	SkipUnknownTrack       SkipReason = "unknown_track"
	SkipNoQuotaRemaining   SkipReason = "no_quota_remaining"
	SkipTokenBudgetReached SkipReason = "daily_token_budget_reached"
	SkipRunTargetReached   SkipReason = "run_target_reached"
	SkipSectionQuota       SkipReason = "section_quota_reached"
	SkipDuplicateExact     SkipReason = "duplicate_exact"
	SkipDuplicateTitle     SkipReason = "duplicate_title"
	SkipDuplicateEvent     SkipReason = "duplicate_event"
	SkipRegionNoise        SkipReason = "region_noise"
	SkipProviderError      SkipReason = "provider_error"
	SkipMalformedResponse  SkipReason = "malformed_response"
	SkipContentTooShort    SkipReason = "content_too_short"
	SkipRejectedNotLocal   SkipReason = "rejected_not_local"
	SkipStoreError         SkipReason = "store_error"
	SkipPersistError       SkipReason = "persist_error"
)

// RunRequest carries the configuration surface of a single pipeline run.
type RunRequest struct {
	Count           int
	DryRun          bool
	IncludeSections []string
	ExcludeSections []string
	BudgetOverride  int
	Scheduled       bool
	Track           string
	FocusMode       string
}

// SkippedCandidate records one rejected candidate and the reason code.
type SkippedCandidate struct {
	Section string     `json:"section"`
	Title   string     `json:"title"`
	Reason  SkipReason `json:"reason"`
}

// DraftSummary is the per-draft slice of a RunResult.
type DraftSummary struct {
	ID          int64  `json:"id,omitempty"`
	Slug        string `json:"slug"`
	Section     string `json:"section"`
	Title       string `json:"title"`
	TotalTokens int    `json:"total_tokens"`
}

// RunResult reports everything a single run did, including every skip.
type RunResult struct {
	OK         bool       `json:"ok"`
	Skipped    bool       `json:"skipped"`
	SkipReason SkipReason `json:"skip_reason,omitempty"`

	Targets     map[string]int `json:"targets"`
	Remaining   map[string]int `json:"remaining"`
	Allocations map[string]int `json:"allocations"`

	Drafts            []DraftSummary     `json:"drafts"`
	SkippedCandidates []SkippedCandidate `json:"skipped_candidates"`
	FeedErrors        []string           `json:"feed_errors,omitempty"`

	TokensBefore   int `json:"tokens_before"`
	TokensConsumed int `json:"tokens_consumed"`
	TokensAfter    int `json:"tokens_after"`

	Duration time.Duration `json:"duration"`
}
