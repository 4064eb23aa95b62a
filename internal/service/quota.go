package service

import "draftgen/internal/domain"

// Allocate splits a run's draft target across the active sections, one slot
// at a time to the section with the most quota left. Ties go to the earlier
// section in domain.SectionOrder, so allocation is deterministic.
func Allocate(remaining map[string]int, active []string, maxForRun int) map[string]int {
	alloc := make(map[string]int, len(active))
	left := make(map[string]int, len(active))
	for _, s := range active {
		alloc[s] = 0
		left[s] = remaining[s]
	}

	rank := make(map[string]int, len(domain.SectionOrder))
	for i, s := range domain.SectionOrder {
		rank[s] = i
	}

	for n := 0; n < maxForRun; n++ {
		best := ""
		for _, s := range active {
			if left[s] <= 0 {
				continue
			}
			if best == "" || left[s] > left[best] ||
				(left[s] == left[best] && rank[s] < rank[best]) {
				best = s
			}
		}
		if best == "" {
			break
		}
		alloc[best]++
		left[best]--
	}

	return alloc
}
