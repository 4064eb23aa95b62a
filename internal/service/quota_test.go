package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"draftgen/internal/domain"
)

func TestAllocateGreedyLargestFirst(t *testing.T) {
	remaining := map[string]int{
		domain.SectionLocal:  5,
		domain.SectionSports: 3,
	}
	active := []string{domain.SectionLocal, domain.SectionSports}

	alloc := Allocate(remaining, active, 4)

	assert.Equal(t, 3, alloc[domain.SectionLocal])
	assert.Equal(t, 1, alloc[domain.SectionSports])
}

func TestAllocateTieBreaksBySectionOrder(t *testing.T) {
	remaining := map[string]int{
		domain.SectionSports:  2,
		domain.SectionSchools: 2,
		domain.SectionLocal:   2,
	}
	active := []string{domain.SectionLocal, domain.SectionSports, domain.SectionSchools}

	alloc := Allocate(remaining, active, 3)

	assert.Equal(t, 1, alloc[domain.SectionLocal])
	assert.Equal(t, 1, alloc[domain.SectionSports])
	assert.Equal(t, 1, alloc[domain.SectionSchools])
}

func TestAllocateStopsWhenQuotaExhausted(t *testing.T) {
	remaining := map[string]int{
		domain.SectionLocal:  1,
		domain.SectionSports: 1,
	}
	active := []string{domain.SectionLocal, domain.SectionSports}

	alloc := Allocate(remaining, active, 10)

	assert.Equal(t, 1, alloc[domain.SectionLocal])
	assert.Equal(t, 1, alloc[domain.SectionSports])
}

func TestAllocateSkipsZeroRemaining(t *testing.T) {
	remaining := map[string]int{
		domain.SectionLocal:  4,
		domain.SectionSports: 0,
	}
	active := []string{domain.SectionLocal, domain.SectionSports}

	alloc := Allocate(remaining, active, 3)

	assert.Equal(t, 3, alloc[domain.SectionLocal])
	assert.Equal(t, 0, alloc[domain.SectionSports])
}
