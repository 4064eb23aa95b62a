package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"draftgen/internal/config"
	"draftgen/internal/dedupe"
	"draftgen/internal/domain"
	"draftgen/internal/feeds"
	"draftgen/internal/sports"
)

// maxSkippedRecorded caps the skipped-candidates list in a RunResult.
const maxSkippedRecorded = 50

// RunService executes generation runs end to end.
type RunService struct {
	store     DraftStore
	source    CandidateSource
	builder   DraftBuilder
	publisher Publisher
	logger    *slog.Logger

	pipeline config.PipelineConfig
	sections []config.SectionConfig
	targets  map[string]int

	now func() time.Time
}

func NewRunService(
	store DraftStore,
	source CandidateSource,
	builder DraftBuilder,
	publisher Publisher,
	cfg *config.Config,
	logger *slog.Logger,
) *RunService {
	return &RunService{
		store:     store,
		source:    source,
		builder:   builder,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "run")),
		pipeline:  cfg.Pipeline,
		sections:  cfg.Sections,
		targets:   cfg.SectionTargets(),
		now:       time.Now,
	}
}

// Run executes one generation run. An error return means the run could not
// start at all; everything after collection is reported through the
// RunResult, including per-candidate skips.
func (s *RunService) Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, error) {
	started := s.now()
	now := started.In(s.pipeline.Location())

	result := &domain.RunResult{
		Targets:     map[string]int{},
		Remaining:   map[string]int{},
		Allocations: map[string]int{},
		Drafts:      []domain.DraftSummary{},
	}

	if req.Scheduled {
		if ok, reason := checkSchedule(req.Track, now.Format("15:04")); !ok {
			s.logger.Info("scheduled run outside slot",
				slog.String("track", req.Track),
				slog.String("reason", string(reason)))
			result.Skipped = true
			result.SkipReason = reason
			result.Duration = s.now().Sub(started)
			return result, nil
		}
	}

	focusMode := req.FocusMode
	if focusMode == "" {
		focusMode = s.pipeline.FocusMode
	}
	focusMode = sports.ResolveFocus(focusMode, now.Month())

	usage, err := s.store.DailyUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("read daily usage: %w", err)
	}
	generated, err := s.store.GeneratedToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("read generated counts: %w", err)
	}
	result.TokensBefore = usage.TotalTokens

	budget := s.pipeline.DailyTokenBudget
	if req.BudgetOverride > 0 {
		budget = req.BudgetOverride
	}

	active := s.activeSections(req)
	totalRemaining := 0
	for _, name := range active {
		target := s.targets[name]
		remaining := target - generated[name]
		if remaining < 0 {
			remaining = 0
		}
		result.Targets[name] = target
		result.Remaining[name] = remaining
		totalRemaining += remaining
	}

	requested := req.Count
	if requested <= 0 || requested > s.pipeline.MaxPerRun {
		requested = s.pipeline.MaxPerRun
	}
	target := requested
	if !req.DryRun && totalRemaining < target {
		target = totalRemaining
	}

	if target == 0 {
		result.Skipped = true
		result.SkipReason = domain.SkipNoQuotaRemaining
		result.Duration = s.now().Sub(started)
		s.logResult(result, req)
		return result, nil
	}

	// Dry runs report the real remaining quotas but are not capped by
	// them; allocation previews against the full daily targets.
	allocBase := result.Remaining
	if req.DryRun {
		allocBase = result.Targets
	}
	result.Allocations = Allocate(allocBase, active, target)

	var sectionFeeds []feeds.SectionFeeds
	for _, sec := range s.orderedSections(active) {
		if result.Allocations[sec.name] <= 0 {
			continue
		}
		sectionFeeds = append(sectionFeeds, feeds.SectionFeeds{Name: sec.name, URLs: sec.urls})
	}

	candidates, feedErrors := s.source.Collect(ctx, sectionFeeds, focusMode)
	result.FeedErrors = feedErrors

	index, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}

	s.selectAndBuild(ctx, req, result, candidates, index, focusMode, budget, target)

	result.TokensAfter = result.TokensBefore + result.TokensConsumed
	result.OK = true
	result.Duration = s.now().Sub(started)
	s.logResult(result, req)
	return result, nil
}

// activeSections returns the configured sections that survive the request's
// include/exclude filters, in domain.SectionOrder. Filter names are matched
// verbatim: an unknown name selects nothing rather than normalizing to the
// default section.
func (s *RunService) activeSections(req domain.RunRequest) []string {
	include := map[string]bool{}
	for _, name := range req.IncludeSections {
		include[name] = true
	}
	exclude := map[string]bool{}
	for _, name := range req.ExcludeSections {
		exclude[name] = true
	}

	configured := map[string]bool{}
	for _, sec := range s.sections {
		configured[domain.NormalizeSection(sec.Name)] = true
	}

	var active []string
	for _, name := range domain.SectionOrder {
		if !configured[name] {
			continue
		}
		if len(include) > 0 && !include[name] {
			continue
		}
		if exclude[name] {
			continue
		}
		active = append(active, name)
	}
	return active
}

type orderedSection struct {
	name string
	urls []string
}

func (s *RunService) orderedSections(active []string) []orderedSection {
	urls := map[string][]string{}
	for _, sec := range s.sections {
		name := domain.NormalizeSection(sec.Name)
		urls[name] = append(urls[name], sec.Feeds...)
	}

	var out []orderedSection
	for _, name := range active {
		out = append(out, orderedSection{name: name, urls: urls[name]})
	}
	return out
}

// buildIndex loads the lookback window into a fresh duplicate index. Sports
// rows also contribute event keys so reworded game coverage is caught.
func (s *RunService) buildIndex(ctx context.Context) (*dedupe.Index, error) {
	records, err := s.store.RecentTitles(ctx, s.pipeline.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("read recent titles: %w", err)
	}

	index := dedupe.NewIndex()
	for _, rec := range records {
		index.AddTitle(rec.Title)
		if rec.Section == domain.SectionSports {
			index.AddEventKeys(sports.EventKeys(rec.Title))
		}
	}
	return index, nil
}

// selectAndBuild walks the ranked candidates, applying the per-candidate
// gates in order, building drafts for survivors, and persisting them unless
// the run is dry. Accepted titles and event keys enter the index so later
// candidates in the same run are checked against them.
func (s *RunService) selectAndBuild(
	ctx context.Context,
	req domain.RunRequest,
	result *domain.RunResult,
	candidates []domain.Candidate,
	index *dedupe.Index,
	focusMode string,
	budget, target int,
) {
	perSection := map[string]int{}

	for i, cand := range candidates {
		if !req.DryRun && result.TokensBefore+result.TokensConsumed >= budget {
			s.recordRest(result, candidates[i:], domain.SkipTokenBudgetReached)
			return
		}
		if len(result.Drafts) >= target {
			s.recordRest(result, candidates[i:], domain.SkipRunTargetReached)
			return
		}

		if !req.DryRun && perSection[cand.Section] >= result.Allocations[cand.Section] {
			s.recordSkip(result, cand, domain.SkipSectionQuota)
			continue
		}

		if cand.Section == domain.SectionSports && sports.IsFloridaNoise(cand.Title+" "+cand.Snippet) {
			s.recordSkip(result, cand, domain.SkipRegionNoise)
			continue
		}

		exists, err := s.store.DuplicateExists(ctx, dedupe.Slugify(cand.Title), cand.URL, cand.Title)
		if err != nil {
			s.logger.Error("duplicate check failed", slog.String("error", err.Error()))
			s.recordSkip(result, cand, domain.SkipStoreError)
			continue
		}
		if exists {
			s.recordSkip(result, cand, domain.SkipDuplicateExact)
			continue
		}

		if index.MatchesTitle(cand.Title) {
			s.recordSkip(result, cand, domain.SkipDuplicateTitle)
			continue
		}

		var candKeys []string
		if cand.Section == domain.SectionSports {
			candKeys = sports.EventKeys(cand.Title + " " + cand.Snippet)
			if index.MatchesEvent(candKeys) {
				s.recordSkip(result, cand, domain.SkipDuplicateEvent)
				continue
			}
		}

		draft, spent, reason := s.builder.Build(ctx, cand, focusMode)
		result.TokensConsumed += spent
		if reason != "" {
			s.recordSkip(result, cand, reason)
			continue
		}

		// The generated headline can collide with prior coverage even
		// when the source headline did not.
		if index.MatchesTitle(draft.Title) {
			s.recordSkip(result, cand, domain.SkipDuplicateTitle)
			continue
		}
		var draftKeys []string
		if draft.Section == domain.SectionSports {
			draftKeys = sports.EventKeys(draft.Title + " " + draft.Description)
			if index.MatchesEvent(draftKeys) {
				s.recordSkip(result, cand, domain.SkipDuplicateEvent)
				continue
			}
		}

		if !req.DryRun {
			id, err := s.store.InsertDraft(ctx, draft)
			if err != nil {
				s.logger.Error("insert draft failed",
					slog.String("slug", draft.Slug),
					slog.String("error", err.Error()))
				s.recordSkip(result, cand, domain.SkipPersistError)
				continue
			}
			draft.ID = id

			if s.publisher != nil {
				if err := s.publisher.Publish(ctx, draft); err != nil {
					s.logger.Warn("publish draft event failed",
						slog.String("slug", draft.Slug),
						slog.String("error", err.Error()))
				}
			}
		}

		perSection[cand.Section]++
		result.Drafts = append(result.Drafts, domain.DraftSummary{
			ID:          draft.ID,
			Slug:        draft.Slug,
			Section:     draft.Section,
			Title:       draft.Title,
			TotalTokens: draft.TotalTokens,
		})

		index.AddTitle(cand.Title)
		index.AddTitle(draft.Title)
		index.AddEventKeys(candKeys)
		index.AddEventKeys(draftKeys)
	}
}

func (s *RunService) recordSkip(result *domain.RunResult, cand domain.Candidate, reason domain.SkipReason) {
	if len(result.SkippedCandidates) >= maxSkippedRecorded {
		return
	}
	result.SkippedCandidates = append(result.SkippedCandidates, domain.SkippedCandidate{
		Section: cand.Section,
		Title:   cand.Title,
		Reason:  reason,
	})
}

func (s *RunService) recordRest(result *domain.RunResult, rest []domain.Candidate, reason domain.SkipReason) {
	for _, cand := range rest {
		s.recordSkip(result, cand, reason)
	}
}

func (s *RunService) logResult(result *domain.RunResult, req domain.RunRequest) {
	skipsByReason := map[string]int{}
	for _, sk := range result.SkippedCandidates {
		skipsByReason[string(sk.Reason)]++
	}

	s.logger.Info("run finished",
		slog.Bool("dry_run", req.DryRun),
		slog.Bool("skipped", result.Skipped),
		slog.String("skip_reason", string(result.SkipReason)),
		slog.Int("drafts", len(result.Drafts)),
		slog.Int("skipped_candidates", len(result.SkippedCandidates)),
		slog.Any("skips_by_reason", skipsByReason),
		slog.Int("feed_errors", len(result.FeedErrors)),
		slog.Int("tokens_consumed", result.TokensConsumed),
		slog.Int("tokens_after", result.TokensAfter),
		slog.Duration("duration", result.Duration),
	)
}
