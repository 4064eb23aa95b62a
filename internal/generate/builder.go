package generate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"draftgen/internal/dedupe"
	"draftgen/internal/domain"
)

// Builder drives one candidate through the provider and classifies the
// outcome. The returned token count is what the attempt cost even when the
// candidate was rejected.
type Builder struct {
	provider  Provider
	minWords  int
	maxTokens int
	logger    *slog.Logger
}

func NewBuilder(provider Provider, minWords, maxTokens int, logger *slog.Logger) *Builder {
	return &Builder{
		provider:  provider,
		minWords:  minWords,
		maxTokens: maxTokens,
		logger:    logger.With(slog.String("component", "builder")),
	}
}

// Build generates a draft for the candidate. On rejection it returns a nil
// draft, the tokens spent, and the reason. A draft that comes back under the
// word minimum gets exactly one expansion retry.
func (b *Builder) Build(ctx context.Context, cand domain.Candidate, focusMode string) (*domain.Draft, int, domain.SkipReason) {
	logger := b.logger.With(
		slog.String("section", cand.Section),
		slog.String("title", cand.Title),
	)

	prompt := BuildPrompt(cand, focusMode)

	gen, comp, spent, reason := b.attempt(ctx, prompt, logger)
	if reason != "" {
		return nil, spent, reason
	}

	if wordCount(gen.Content) < b.minWords {
		logger.Info("draft under word minimum, retrying with expansion",
			slog.Int("words", wordCount(gen.Content)))

		gen2, comp2, spent2, reason2 := b.attempt(ctx, prompt+expansionInstruction, logger)
		spent += spent2
		if reason2 != "" {
			return nil, spent, reason2
		}
		if wordCount(gen2.Content) < b.minWords {
			logger.Warn("draft still under word minimum after retry",
				slog.Int("words", wordCount(gen2.Content)))
			return nil, spent, domain.SkipContentTooShort
		}
		// The draft records the cost of both attempts.
		comp2.InputTokens += comp.InputTokens
		comp2.OutputTokens += comp.OutputTokens
		gen, comp = gen2, comp2
	}

	draft := b.assemble(cand, gen, comp)
	return draft, spent, ""
}

// attempt makes one provider call and parses it. A non-empty reason means
// the attempt failed; spent tokens are reported either way.
func (b *Builder) attempt(ctx context.Context, prompt string, logger *slog.Logger) (*generation, *Completion, int, domain.SkipReason) {
	comp, err := b.provider.Complete(ctx, systemPrompt, prompt, b.maxTokens)
	if err != nil {
		logger.Error("provider call failed", slog.String("error", err.Error()))
		return nil, nil, 0, domain.SkipProviderError
	}
	spent := comp.InputTokens + comp.OutputTokens

	gen, err := parseGeneration(comp.Text)
	if err != nil {
		logger.Warn("unparseable provider response", slog.String("error", err.Error()))
		return nil, nil, spent, domain.SkipMalformedResponse
	}

	if strings.TrimSpace(gen.Title) == "" || strings.TrimSpace(gen.Content) == "" {
		return nil, nil, spent, domain.SkipRejectedNotLocal
	}

	return gen, comp, spent, ""
}

func (b *Builder) assemble(cand domain.Candidate, gen *generation, comp *Completion) *domain.Draft {
	section := domain.NormalizeSection(gen.Section)
	if gen.Section == "" {
		section = cand.Section
	}

	title := strings.TrimSpace(gen.Title)

	return &domain.Draft{
		Slug:              dedupe.Slugify(title),
		Title:             title,
		Description:       strings.TrimSpace(gen.Description),
		Content:           strings.TrimSpace(gen.Content),
		Section:           section,
		SourceURL:         cand.URL,
		SourceTitle:       cand.Title,
		SourcePublishedAt: cand.PublishedAt,
		Model:             comp.Model,
		InputTokens:       comp.InputTokens,
		OutputTokens:      comp.OutputTokens,
		TotalTokens:       comp.InputTokens + comp.OutputTokens,
		CreatedVia:        domain.CreatedViaAuto,
		Status:            domain.StatusPendingReview,
		CreatedAt:         time.Now().UTC(),
	}
}
