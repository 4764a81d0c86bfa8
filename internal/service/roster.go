package service

import (
	"strings"

	"github.com/aphrc/internship-tracker/internal/models"
)

// FilterRoster returns the participants matching every facet of filter, in
// roster order. The input slice is not modified.
func FilterRoster(roster []models.Participant, filter models.RosterFilter) []models.Participant {
	m := newRosterMatcher(filter)
	out := make([]models.Participant, 0, len(roster))
	for _, p := range roster {
		if m.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// ComputeRosterStats aggregates counts over the whole roster.
func ComputeRosterStats(roster []models.Participant) models.RosterStats {
	stats := models.RosterStats{Total: len(roster)}
	for _, p := range roster {
		switch p.Status {
		case models.StatusOngoing:
			stats.Ongoing++
		case models.StatusCompleted:
			stats.Completed++
		}
		if p.PendingDocuments() {
			stats.PendingDocuments++
		}
	}
	return stats
}

type rosterMatcher struct {
	search string
	status string
	unit   string
}

func newRosterMatcher(filter models.RosterFilter) rosterMatcher {
	filter = filter.Normalized()
	m := rosterMatcher{search: strings.ToLower(filter.Search), status: filter.Status, unit: filter.Unit}
	if m.unit != models.FilterAll {
		m.unit = strings.ToLower(m.unit)
	}
	return m
}

func (m rosterMatcher) matches(p models.Participant) bool {
	if m.status != models.FilterAll && string(p.Status) != m.status {
		return false
	}
	if m.unit != models.FilterAll && strings.ToLower(p.Unit) != m.unit {
		return false
	}
	return m.matchesSearch(p)
}

func (m rosterMatcher) matchesSearch(p models.Participant) bool {
	if m.search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), m.search) ||
		strings.Contains(strings.ToLower(p.Supervisor), m.search)
}

// RosterIndex narrows large rosters by status and unit before the search
// pass. Its results equal FilterRoster over the same roster.
type RosterIndex struct {
	roster   []models.Participant
	byStatus map[string][]int
	byUnit   map[string][]int
}

// NewRosterIndex indexes roster. The slice must not be modified afterwards.
func NewRosterIndex(roster []models.Participant) *RosterIndex {
	idx := &RosterIndex{
		roster:   roster,
		byStatus: make(map[string][]int),
		byUnit:   make(map[string][]int),
	}
	for i, p := range roster {
		status := string(p.Status)
		unit := strings.ToLower(p.Unit)
		idx.byStatus[status] = append(idx.byStatus[status], i)
		idx.byUnit[unit] = append(idx.byUnit[unit], i)
	}
	return idx
}

// Len is the number of indexed participants.
func (idx *RosterIndex) Len() int {
	return len(idx.roster)
}

// Filter applies filter using the facet postings.
func (idx *RosterIndex) Filter(filter models.RosterFilter) []models.Participant {
	m := newRosterMatcher(filter)
	candidates := idx.candidates(m)
	if candidates == nil {
		return FilterRoster(idx.roster, filter)
	}
	out := make([]models.Participant, 0, len(candidates))
	for _, i := range candidates {
		if m.matches(idx.roster[i]) {
			out = append(out, idx.roster[i])
		}
	}
	return out
}

// candidates returns the shortest posting list for the active facets, or nil
// when no facet is active. Postings are ascending so roster order holds.
func (idx *RosterIndex) candidates(m rosterMatcher) []int {
	var best []int
	found := false
	if m.status != models.FilterAll {
		best, found = idx.byStatus[m.status], true
	}
	if m.unit != models.FilterAll {
		postings := idx.byUnit[m.unit]
		if !found || len(postings) < len(best) {
			best, found = postings, true
		}
	}
	if !found {
		return nil
	}
	if best == nil {
		return []int{}
	}
	return best
}
