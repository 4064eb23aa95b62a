package generate

import (
	"fmt"
	"strings"

	"draftgen/internal/domain"
)

const systemPrompt = `You are a local news writer for a small-town Ohio publication covering Oxford, Miami University, and Butler County.

Write an original article based on the source material you are given. Do not copy sentences from the source.

Output as JSON only, no other text:
{
  "title": "article headline",
  "description": "one-sentence summary for listings",
  "content": "full article body",
  "section": "the section this belongs in"
}

If the source is not relevant to the local audience, return the same JSON with empty "title" and "content".`

// strictLocality marks sections that must keep a hard regional focus; the
// rest may cover broader stories with a local angle.
var strictLocality = map[string]bool{
	domain.SectionLocal:   true,
	domain.SectionSchools: true,
}

// BuildPrompt assembles the user prompt for one candidate.
func BuildPrompt(cand domain.Candidate, focusMode string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Section: %s\n", cand.Section)
	fmt.Fprintf(&b, "Source headline: %s\n", cand.Title)
	fmt.Fprintf(&b, "Source URL: %s\n", cand.URL)
	if cand.Snippet != "" {
		fmt.Fprintf(&b, "Source summary: %s\n", cand.Snippet)
	}
	b.WriteString("\n")

	if strictLocality[cand.Section] {
		b.WriteString("This section is strictly regional: only write the article if the story directly concerns Oxford, Miami University, Talawanda schools, or Butler County. Otherwise reject it.\n")
	} else {
		b.WriteString("Prefer a local angle where one exists, but broader stories of clear interest to the local audience are acceptable.\n")
	}

	if cand.Section == domain.SectionSports {
		fmt.Fprintf(&b, "Sports coverage prioritizes upcoming games over recaps. The current seasonal focus is %s.\n", focusMode)
	}

	return b.String()
}

// expansionInstruction is appended on the single word-count retry.
const expansionInstruction = "\nThe previous draft was too short. Expand the article body with additional context and background; aim well past the minimum length while staying factual.\n"
